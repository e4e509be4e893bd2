package healthstore

import (
	"context"
	"time"

	"github.com/vitalog/vitalog/internal/domain"
	"github.com/vitalog/vitalog/internal/domain/entry"
	"github.com/vitalog/vitalog/internal/domain/health"
)

// StateStorage is the persistence contract the store writes its state slices
// through. Reads return storage.ErrNotFound (wrapped) when a slice has never
// been persisted.
type StateStorage interface {
	AuthFlag(ctx context.Context) (bool, error)
	SetAuthFlag(ctx context.Context) error
	ClearAuthFlag(ctx context.Context) error

	Metrics(ctx context.Context) ([]health.Metrics, error)
	SaveMetrics(ctx context.Context, metrics []health.Metrics) error

	WeightEntries(ctx context.Context) ([]entry.Weight, error)
	SaveWeightEntries(ctx context.Context, entries []entry.Weight) error

	BloodPressureEntries(ctx context.Context) ([]entry.BloodPressure, error)
	SaveBloodPressureEntries(ctx context.Context, entries []entry.BloodPressure) error

	SleepEntries(ctx context.Context) ([]entry.Sleep, error)
	SaveSleepEntries(ctx context.Context, entries []entry.Sleep) error
}

// DataProvider supplies the demo profile, an initial window of daily metrics
// and the static entry seed lists. A real telemetry feed can be substituted
// without touching the store's contract.
type DataProvider interface {
	Profile() health.User
	DailyMetrics(days int, until time.Time) []health.Metrics
	SeedWeights() []entry.Weight
	SeedBloodPressure() []entry.BloodPressure
	SeedSleep() []entry.Sleep
}

type MessageBus interface {
	PublishEvents(events ...domain.Event) error
}

// Clock supplies the current time, so "today" is injectable in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}
