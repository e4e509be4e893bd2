package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/vitalog/vitalog/internal/domain/health"
)

var (
	ErrTokenInvalid = errors.New("invalid session token")
)

// Issuer signs and validates the session tokens the HTTP layer hands out
// after a successful login. This is transport glue only: the store's own
// session state remains the persisted authentication flag.
type Issuer struct {
	Secret   string
	TokenTTL time.Duration
}

func (i *Issuer) IssueToken(u *health.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": u.ID,
		"exp": now.Add(i.TokenTTL).Unix(),
		"iat": now.Unix(),
	})
	return token.SignedString([]byte(i.Secret))
}

type TokenData struct {
	UserID string
}

func (i *Issuer) ValidateToken(accessToken string) (*TokenData, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(accessToken, &claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(i.Secret), nil
	})
	if err != nil {
		return nil, ErrTokenInvalid
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return nil, ErrTokenInvalid
	}

	return &TokenData{UserID: sub}, nil
}
