package storage

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("key not found")
	ErrInternal = errors.New("internal storage error")
)

// KV is the on-device key-value storage every state slice persists to.
// Values are opaque bytes; the typed layer above encodes JSON.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

func InternalError(err error) error {
	return errors.Join(fmt.Errorf("internal storage error: %w", err), ErrInternal)
}
