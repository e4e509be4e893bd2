package seed_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalog/vitalog/internal/adapter/seed"
	"github.com/vitalog/vitalog/internal/domain/health"
)

var until = time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

func TestDailyMetrics(t *testing.T) {
	data := seed.New(1).DailyMetrics(30, until)
	require.Len(t, data, 30)

	assert.Equal(t, "2026-07-30", data[0].Date)
	assert.Equal(t, "2026-08-28", data[len(data)-1].Date)

	seen := make(map[string]bool, len(data))
	for i, m := range data {
		assert.False(t, seen[m.Date], "duplicate date %s", m.Date)
		seen[m.Date] = true
		if i > 0 {
			assert.Less(t, data[i-1].Date, m.Date)
		}

		assert.GreaterOrEqual(t, m.Steps, 6000)
		assert.Less(t, m.Steps, 11000)
		assert.GreaterOrEqual(t, m.Calories, 1800)
		assert.Less(t, m.Calories, 2600)
		assert.GreaterOrEqual(t, m.HeartRate, 60)
		assert.Less(t, m.HeartRate, 100)
		assert.GreaterOrEqual(t, m.SleepHours, 6.0)
		assert.Less(t, m.SleepHours, 9.0)
	}
}

func TestDailyMetrics_DeterministicPerSeed(t *testing.T) {
	a := seed.New(42).DailyMetrics(7, until)
	b := seed.New(42).DailyMetrics(7, until)
	assert.Equal(t, a, b)
}

func TestProfile(t *testing.T) {
	u := seed.New(1).Profile()
	assert.Equal(t, health.User{
		ID:        "1",
		Name:      "Sarah Johnson",
		Email:     "sarah.johnson@email.com",
		Age:       28,
		HeightCm:  165,
		WeightKg:  62,
		AvatarURL: u.AvatarURL,
	}, u)
	assert.NotEmpty(t, u.AvatarURL)
}

func TestSeedEntryLists(t *testing.T) {
	g := seed.New(1)

	weights := g.SeedWeights()
	require.Len(t, weights, 4)
	assert.Equal(t, 62.5, weights[0].WeightKg)

	bp := g.SeedBloodPressure()
	require.Len(t, bp, 3)
	assert.Equal(t, 118, bp[0].Systolic)

	sleep := g.SeedSleep()
	require.Len(t, sleep, 3)
	for _, s := range sleep {
		assert.True(t, s.Quality.Valid())
	}
}
