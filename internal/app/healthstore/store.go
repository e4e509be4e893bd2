// Package healthstore holds the process-wide session and health data state.
//
// The in-memory state is authoritative: mutations update it synchronously
// and persistence follows asynchronously, best-effort, in call order. A
// failed write is logged and never rolls the in-memory update back.
package healthstore

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"sync"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/vitalog/vitalog/internal/adapter/storage"
	"github.com/vitalog/vitalog/internal/domain"
	"github.com/vitalog/vitalog/internal/domain/entry"
	"github.com/vitalog/vitalog/internal/domain/health"
	"github.com/vitalog/vitalog/internal/domain/session"
)

const (
	defaultHistoryDays = 30
	weeklyWindow       = 7
	writeQueueSize     = 64
)

type Store struct {
	logger   *slog.Logger
	storage  StateStorage
	provider DataProvider
	bus      MessageBus
	clock    Clock
	newID    func() string
	history  int

	mu            sync.RWMutex
	user          *health.User
	authenticated bool
	loading       bool
	metrics       []health.Metrics
	weights       []entry.Weight
	bloodPressure []entry.BloodPressure
	sleep         []entry.Sleep

	writes    chan writeOp
	done      chan struct{}
	closeOnce sync.Once
}

type writeOp struct {
	key string
	do  func(ctx context.Context) error
}

type Option func(*Store)

func WithBus(bus MessageBus) Option {
	return func(s *Store) {
		s.bus = bus
	}
}

func WithClock(clock Clock) Option {
	return func(s *Store) {
		s.clock = clock
	}
}

func WithIDGenerator(newID func() string) Option {
	return func(s *Store) {
		s.newID = newID
	}
}

func WithHistoryDays(days int) Option {
	return func(s *Store) {
		if days > 0 {
			s.history = days
		}
	}
}

func New(stateStorage StateStorage, provider DataProvider, logger *slog.Logger, opts ...Option) *Store {
	s := &Store{
		logger:   logger,
		storage:  stateStorage,
		provider: provider,
		clock:    systemClock{},
		newID:    uuid.NewString,
		history:  defaultHistoryDays,
		loading:  true,
		writes:   make(chan writeOp, writeQueueSize),
		done:     make(chan struct{}),
	}

	for _, opt := range opts {
		opt(s)
	}

	go s.writer()
	return s
}

// Initialize restores every state slice from storage, falling back to
// provider data where nothing is persisted. Read failures are logged and
// degrade that one slice to its default; the loading flag clears regardless.
func (s *Store) Initialize(ctx context.Context) {
	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	authenticated, err := s.storage.AuthFlag(ctx)
	if err != nil {
		s.logger.Error("restore session failed", "error", err)
		authenticated = false
	}

	var user *health.User
	if authenticated {
		profile := s.provider.Profile()
		user = &profile
	}

	metrics := s.restoreMetrics(ctx)
	weights := restore(ctx, s.logger, storage.KeyWeightEntries, s.storage.WeightEntries, s.provider.SeedWeights)
	bloodPressure := restore(ctx, s.logger, storage.KeyBloodPressureEntries, s.storage.BloodPressureEntries, s.provider.SeedBloodPressure)
	sleep := restore(ctx, s.logger, storage.KeySleepEntries, s.storage.SleepEntries, s.provider.SeedSleep)

	s.mu.Lock()
	s.user = user
	s.authenticated = authenticated
	s.metrics = metrics
	s.weights = weights
	s.bloodPressure = bloodPressure
	s.sleep = sleep
	s.mu.Unlock()
}

// restoreMetrics loads the daily metrics collection, synthesizing and
// persisting an initial window when none exists yet so later initializations
// read the same data.
func (s *Store) restoreMetrics(ctx context.Context) []health.Metrics {
	stored, err := s.storage.Metrics(ctx)
	switch {
	case err == nil:
		return stored
	case errors.Is(err, storage.ErrNotFound):
		seeded := s.provider.DailyMetrics(s.history, s.clock.Now())
		if err := s.storage.SaveMetrics(ctx, seeded); err != nil {
			s.logger.Error("persist seeded health data failed", "error", err)
		}
		return seeded
	default:
		s.logger.Error("restore failed", "key", storage.KeyHealthData, "error", err)
		return nil
	}
}

func restore[T any](
	ctx context.Context,
	logger *slog.Logger,
	key string,
	read func(context.Context) ([]T, error),
	seed func() []T,
) []T {
	items, err := read(ctx)
	if err == nil {
		return items
	}
	if errors.Is(err, storage.ErrNotFound) {
		return seed()
	}
	logger.Error("restore failed", "key", key, "error", err)
	return nil
}

// Login performs no credential verification; any non-empty email and
// password are accepted, and rejecting empty fields is the caller's job.
func (s *Store) Login(ctx context.Context, email, password string) bool {
	profile := s.provider.Profile()

	s.mu.Lock()
	s.user = &profile
	s.authenticated = true
	s.mu.Unlock()

	s.enqueue(storage.KeyAuthenticated, s.storage.SetAuthFlag)
	s.publish(session.LoginEvent{At: s.clock.Now(), Email: email})
	return true
}

// Logout clears the session. Health data and entry collections stay intact
// for the next login of the same (only) user.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	s.user = nil
	s.authenticated = false
	s.mu.Unlock()

	s.enqueue(storage.KeyAuthenticated, s.storage.ClearAuthFlag)
	s.publish(session.LogoutEvent{At: s.clock.Now()})
}

func (s *Store) AddWeightEntry(ctx context.Context, kg float64) {
	e := entry.NewWeight(s.newID(), kg, health.DateOf(s.clock.Now()))

	s.mu.Lock()
	updated := prepend(e, s.weights)
	s.weights = updated
	s.mu.Unlock()

	s.enqueue(storage.KeyWeightEntries, func(ctx context.Context) error {
		return s.storage.SaveWeightEntries(ctx, updated)
	})
	s.publish(entry.AddedEvent{At: s.clock.Now(), Kind: entry.EventWeightAdded, EntryID: e.ID, Date: e.Date})
}

func (s *Store) AddBloodPressureEntry(ctx context.Context, systolic, diastolic int) {
	e := entry.NewBloodPressure(s.newID(), systolic, diastolic, health.DateOf(s.clock.Now()))

	s.mu.Lock()
	updated := prepend(e, s.bloodPressure)
	s.bloodPressure = updated
	s.mu.Unlock()

	s.enqueue(storage.KeyBloodPressureEntries, func(ctx context.Context) error {
		return s.storage.SaveBloodPressureEntries(ctx, updated)
	})
	s.publish(entry.AddedEvent{At: s.clock.Now(), Kind: entry.EventBloodPressureAdded, EntryID: e.ID, Date: e.Date})
}

func (s *Store) AddSleepEntry(ctx context.Context, hours float64, quality entry.Quality) {
	e := entry.NewSleep(s.newID(), hours, quality, health.DateOf(s.clock.Now()))

	s.mu.Lock()
	updated := prepend(e, s.sleep)
	s.sleep = updated
	s.mu.Unlock()

	s.enqueue(storage.KeySleepEntries, func(ctx context.Context) error {
		return s.storage.SaveSleepEntries(ctx, updated)
	})
	s.publish(entry.AddedEvent{At: s.clock.Now(), Kind: entry.EventSleepAdded, EntryID: e.ID, Date: e.Date})
}

// TodayMetrics returns the record for the current calendar date, or nil when
// none exists. Recomputed on every call.
func (s *Store) TodayMetrics() *health.Metrics {
	today := health.DateOf(s.clock.Now())

	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.metrics {
		if s.metrics[i].Date == today {
			m := s.metrics[i]
			return &m
		}
	}
	return nil
}

// WeeklyAverage averages the last 7 records of the date-ordered collection,
// dividing by however many records are actually present. Nil when empty.
func (s *Store) WeeklyAverage() *health.Averages {
	s.mu.RLock()
	defer s.mu.RUnlock()

	week := s.metrics
	if len(week) > weeklyWindow {
		week = week[len(week)-weeklyWindow:]
	}
	if len(week) == 0 {
		return nil
	}

	n := float64(len(week))
	steps := lo.SumBy(week, func(m health.Metrics) int { return m.Steps })
	calories := lo.SumBy(week, func(m health.Metrics) int { return m.Calories })
	heartRate := lo.SumBy(week, func(m health.Metrics) int { return m.HeartRate })
	sleepHours := lo.SumBy(week, func(m health.Metrics) float64 { return m.SleepHours })

	return &health.Averages{
		Steps:      int(math.Round(float64(steps) / n)),
		Calories:   int(math.Round(float64(calories) / n)),
		HeartRate:  int(math.Round(float64(heartRate) / n)),
		SleepHours: math.Round(sleepHours/n*10) / 10,
	}
}

// User returns the current session user, nil when unauthenticated.
func (s *Store) User() *health.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

// IsLoading reports whether Initialize has not yet completed.
func (s *Store) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// HealthData returns the daily metrics collection, ascending by date.
// Callers must treat the returned slice as read-only.
func (s *Store) HealthData() []health.Metrics {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.metrics
}

// WeightEntries returns the weight collection, most recently added first.
// Callers must treat the returned slice as read-only.
func (s *Store) WeightEntries() []entry.Weight {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.weights
}

func (s *Store) BloodPressureEntries() []entry.BloodPressure {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bloodPressure
}

func (s *Store) SleepEntries() []entry.Sleep {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sleep
}

// Flush blocks until every write enqueued before the call has been attempted.
func (s *Store) Flush(ctx context.Context) error {
	ready := make(chan struct{})
	s.writes <- writeOp{key: "flush", do: func(context.Context) error {
		close(ready)
		return nil
	}}

	select {
	case <-ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close drains pending writes and stops the background writer. No operation
// may be called afterwards.
func (s *Store) Close() {
	s.closeOnce.Do(func() {
		close(s.writes)
		<-s.done
	})
}

func (s *Store) writer() {
	defer close(s.done)
	for op := range s.writes {
		// Writes deliberately outlive the request that triggered them;
		// in-memory state has already moved on.
		if err := op.do(context.Background()); err != nil {
			s.logger.Error("persist failed", "key", op.key, "error", err)
		}
	}
}

func (s *Store) enqueue(key string, do func(ctx context.Context) error) {
	s.writes <- writeOp{key: key, do: do}
}

func (s *Store) publish(events ...domain.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.PublishEvents(events...); err != nil {
		s.logger.Error("publish events failed", "error", err)
	}
}

func prepend[T any](head T, tail []T) []T {
	updated := make([]T, 0, len(tail)+1)
	updated = append(updated, head)
	return append(updated, tail...)
}
