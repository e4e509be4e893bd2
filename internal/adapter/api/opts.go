package api

import (
	"log/slog"
	"net"
	"strconv"

	"github.com/vitalog/vitalog/internal/app/auth"
	"github.com/vitalog/vitalog/internal/app/healthstore"
)

type Option func(*Server)

func Addr(host string, port int) Option {
	return func(s *Server) {
		s.addr = net.JoinHostPort(host, strconv.Itoa(port))
	}
}

func Logger(l *slog.Logger) Option {
	return func(s *Server) {
		s.logger = l
	}
}

func Store(store *healthstore.Store) Option {
	return func(s *Server) {
		s.store = store
	}
}

func TokenIssuer(issuer *auth.Issuer) Option {
	return func(s *Server) {
		s.issuer = issuer
	}
}
