package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vitalog/vitalog/internal/domain/entry"
	"github.com/vitalog/vitalog/internal/domain/health"
)

// Persisted key layout. One entry per key, values are UTF-8 JSON except the
// auth flag, which is the literal string "true".
const (
	KeyAuthenticated        = "isAuthenticated"
	KeyHealthData           = "healthData"
	KeyWeightEntries        = "weightEntries"
	KeyBloodPressureEntries = "bloodPressureEntries"
	KeySleepEntries         = "sleepEntries"

	authFlagValue = "true"
)

// StateStore is the typed persistence layer over a KV backend. It is a
// serialized mirror of the in-memory state, never a second source of truth.
type StateStore struct {
	kv KV
}

func NewStateStore(kv KV) *StateStore {
	return &StateStore{kv: kv}
}

// AuthFlag reports whether a truthy authentication flag is persisted.
// An absent key is not an error.
func (s *StateStore) AuthFlag(ctx context.Context) (bool, error) {
	raw, err := s.kv.Get(ctx, KeyAuthenticated)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", KeyAuthenticated, err)
	}
	return string(raw) == authFlagValue, nil
}

func (s *StateStore) SetAuthFlag(ctx context.Context) error {
	if err := s.kv.Set(ctx, KeyAuthenticated, []byte(authFlagValue)); err != nil {
		return fmt.Errorf("write %s: %w", KeyAuthenticated, err)
	}
	return nil
}

func (s *StateStore) ClearAuthFlag(ctx context.Context) error {
	if err := s.kv.Delete(ctx, KeyAuthenticated); err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("delete %s: %w", KeyAuthenticated, err)
	}
	return nil
}

func (s *StateStore) Metrics(ctx context.Context) ([]health.Metrics, error) {
	return load[health.Metrics](ctx, s.kv, KeyHealthData)
}

func (s *StateStore) SaveMetrics(ctx context.Context, metrics []health.Metrics) error {
	return save(ctx, s.kv, KeyHealthData, metrics)
}

func (s *StateStore) WeightEntries(ctx context.Context) ([]entry.Weight, error) {
	return load[entry.Weight](ctx, s.kv, KeyWeightEntries)
}

func (s *StateStore) SaveWeightEntries(ctx context.Context, entries []entry.Weight) error {
	return save(ctx, s.kv, KeyWeightEntries, entries)
}

func (s *StateStore) BloodPressureEntries(ctx context.Context) ([]entry.BloodPressure, error) {
	return load[entry.BloodPressure](ctx, s.kv, KeyBloodPressureEntries)
}

func (s *StateStore) SaveBloodPressureEntries(ctx context.Context, entries []entry.BloodPressure) error {
	return save(ctx, s.kv, KeyBloodPressureEntries, entries)
}

func (s *StateStore) SleepEntries(ctx context.Context) ([]entry.Sleep, error) {
	return load[entry.Sleep](ctx, s.kv, KeySleepEntries)
}

func (s *StateStore) SaveSleepEntries(ctx context.Context, entries []entry.Sleep) error {
	return save(ctx, s.kv, KeySleepEntries, entries)
}

func load[T any](ctx context.Context, kv KV, key string) ([]T, error) {
	raw, err := kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("read %s: %w", key, err)
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	return items, nil
}

func save[T any](ctx context.Context, kv KV, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := kv.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
