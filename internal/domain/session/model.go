package session

import (
	"time"

	"github.com/vitalog/vitalog/internal/domain/health"
)

const (
	EventLogin  = "session.login"
	EventLogout = "session.logout"
)

// Session is the authenticated/unauthenticated state plus the current user
// profile. There is exactly one (single-user system).
type Session struct {
	User          *health.User
	Authenticated bool
}

// Device describes the client a login originated from, parsed from its
// user-agent string.
type Device struct {
	Browser   string
	OS        string
	IPAddress string
	Model     string
}

type LoginEvent struct {
	At    time.Time
	Email string
}

func (e LoginEvent) Type() string {
	return EventLogin
}

func (e LoginEvent) PublishedAt() time.Time {
	return e.At
}

type LogoutEvent struct {
	At time.Time
}

func (e LogoutEvent) Type() string {
	return EventLogout
}

func (e LogoutEvent) PublishedAt() time.Time {
	return e.At
}
