package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mileusna/useragent"

	"github.com/vitalog/vitalog/internal/domain/session"
)

func (s *Server) MountAuth() {
	sessionRequired := SessionRequired(s.issuer)

	authRoutes := s.handler.Group("/auth")

	authRoutes.POST("/login", s.Login)
	authRoutes.POST("/logout", s.Logout, sessionRequired)
}

type loginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResp struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

func (s *Server) Login(c echo.Context) error {
	var b loginReq
	if err := s.bind(c, &b); err != nil {
		return JsonError(c, http.StatusBadRequest, err)
	}

	agent := useragent.Parse(c.Request().UserAgent())

	ipAddress := c.Request().RemoteAddr
	if c.Request().Header.Get("X-Forwarded-For") != "" {
		ipAddress = c.Request().Header.Get("X-Forwarded-For")
	}

	device := session.Device{
		Browser:   agent.Name,
		OS:        agent.OS,
		IPAddress: ipAddress,
		Model:     agent.Device,
	}

	if ok := s.store.Login(c.Request().Context(), b.Email, b.Password); !ok {
		return JsonError(c, http.StatusUnauthorized, "invalid email or password")
	}

	u := s.store.User()
	s.logger.Info("new login",
		"email", b.Email,
		"browser", device.Browser,
		"os", device.OS,
		"ip_address", device.IPAddress,
		"model", device.Model,
	)

	token, err := s.issuer.IssueToken(u)
	if err != nil {
		return JsonError(c, http.StatusInternalServerError, err)
	}

	return c.JSON(http.StatusOK, &loginResp{
		AccessToken: token,
		User:        toUserResponse(u),
	})
}

func (s *Server) Logout(c echo.Context) error {
	s.store.Logout(c.Request().Context())
	return c.NoContent(http.StatusNoContent)
}
