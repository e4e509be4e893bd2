package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalog/vitalog/internal/adapter/storage"
	"github.com/vitalog/vitalog/internal/adapter/storage/memorykv"
	"github.com/vitalog/vitalog/internal/domain/entry"
	"github.com/vitalog/vitalog/internal/domain/health"
)

func TestAuthFlag(t *testing.T) {
	ctx := context.Background()
	kv := memorykv.New()
	store := storage.NewStateStore(kv)

	authed, err := store.AuthFlag(ctx)
	require.NoError(t, err)
	assert.False(t, authed, "absent flag is not an error")

	require.NoError(t, store.SetAuthFlag(ctx))
	authed, err = store.AuthFlag(ctx)
	require.NoError(t, err)
	assert.True(t, authed)

	raw, err := kv.Get(ctx, storage.KeyAuthenticated)
	require.NoError(t, err)
	assert.Equal(t, "true", string(raw))

	require.NoError(t, store.ClearAuthFlag(ctx))
	authed, err = store.AuthFlag(ctx)
	require.NoError(t, err)
	assert.False(t, authed)

	// Clearing an already-absent flag stays silent.
	require.NoError(t, store.ClearAuthFlag(ctx))
}

func TestMetricsRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := storage.NewStateStore(memorykv.New())

	_, err := store.Metrics(ctx)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	want := []health.Metrics{
		{Date: "2026-08-27", Steps: 9001, Calories: 2100, HeartRate: 72, SleepHours: 7.5},
		{Date: "2026-08-28", Steps: 8500, Calories: 1900, HeartRate: 68, SleepHours: 6.8},
	}
	require.NoError(t, store.SaveMetrics(ctx, want))

	got, err := store.Metrics(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestEntryCollectionsRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := storage.NewStateStore(memorykv.New())

	weights := []entry.Weight{{ID: "a", WeightKg: 62.5, Date: "2026-08-28"}}
	require.NoError(t, store.SaveWeightEntries(ctx, weights))
	gotW, err := store.WeightEntries(ctx)
	require.NoError(t, err)
	assert.Equal(t, weights, gotW)

	bp := []entry.BloodPressure{{ID: "b", Systolic: 120, Diastolic: 80, Date: "2026-08-28"}}
	require.NoError(t, store.SaveBloodPressureEntries(ctx, bp))
	gotBP, err := store.BloodPressureEntries(ctx)
	require.NoError(t, err)
	assert.Equal(t, bp, gotBP)

	sleep := []entry.Sleep{{ID: "c", Hours: 7.2, Quality: entry.QualityFair, Date: "2026-08-28"}}
	require.NoError(t, store.SaveSleepEntries(ctx, sleep))
	gotS, err := store.SleepEntries(ctx)
	require.NoError(t, err)
	assert.Equal(t, sleep, gotS)
}

func TestSaveNilPersistsEmptyList(t *testing.T) {
	ctx := context.Background()
	kv := memorykv.New()
	store := storage.NewStateStore(kv)

	require.NoError(t, store.SaveWeightEntries(ctx, nil))

	raw, err := kv.Get(ctx, storage.KeyWeightEntries)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(raw))
}

func TestMalformedValueIsAnError(t *testing.T) {
	ctx := context.Background()
	kv := memorykv.New()
	require.NoError(t, kv.Set(ctx, storage.KeyHealthData, []byte("not json")))

	_, err := storage.NewStateStore(kv).Metrics(ctx)
	require.Error(t, err)
	assert.NotErrorIs(t, err, storage.ErrNotFound)
}
