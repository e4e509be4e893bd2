package domain

import (
	"time"
)

type Event interface {
	Type() string
	PublishedAt() time.Time
}
