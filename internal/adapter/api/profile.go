package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vitalog/vitalog/internal/domain/health"
)

func (s *Server) MountProfile() {
	s.handler.GET("/profiles/me", s.GetMyProfile, SessionRequired(s.issuer))
}

type UserResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Age       int     `json:"age"`
	HeightCm  int     `json:"height_cm"`
	WeightKg  float64 `json:"weight_kg"`
	AvatarURL string  `json:"avatar_url"`
}

func toUserResponse(u *health.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Age:       u.Age,
		HeightCm:  u.HeightCm,
		WeightKg:  u.WeightKg,
		AvatarURL: u.AvatarURL,
	}
}

func (s *Server) GetMyProfile(c echo.Context) error {
	u := s.store.User()
	if u == nil {
		return JsonError(c, http.StatusUnauthorized, "not logged in")
	}
	return c.JSON(http.StatusOK, toUserResponse(u))
}
