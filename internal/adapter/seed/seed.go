// Package seed generates the demo profile and sample health data the store
// falls back to when nothing has been persisted yet. It stands in for a real
// telemetry feed behind the store's DataProvider contract.
package seed

import (
	"math/rand"
	"time"

	"github.com/vitalog/vitalog/internal/domain/entry"
	"github.com/vitalog/vitalog/internal/domain/health"
)

type Generator struct {
	rnd *rand.Rand
}

func New(randSeed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(randSeed))}
}

// Profile returns the single demo user every login resolves to.
func (g *Generator) Profile() health.User {
	return health.User{
		ID:        "1",
		Name:      "Sarah Johnson",
		Email:     "sarah.johnson@email.com",
		Age:       28,
		HeightCm:  165,
		WeightKg:  62,
		AvatarURL: "https://images.unsplash.com/photo-1494790108755-2616b612b786?w=150&h=150&fit=crop&crop=face",
	}
}

// DailyMetrics returns days consecutive records ending on the until date,
// ascending, one per calendar date.
func (g *Generator) DailyMetrics(days int, until time.Time) []health.Metrics {
	data := make([]health.Metrics, 0, days)

	for i := days - 1; i >= 0; i-- {
		day := until.AddDate(0, 0, -i)
		data = append(data, health.Metrics{
			Date:       health.DateOf(day),
			Steps:      6000 + g.rnd.Intn(5000),
			Calories:   1800 + g.rnd.Intn(800),
			HeartRate:  60 + g.rnd.Intn(40),
			SleepHours: 6 + g.rnd.Float64()*3,
		})
	}

	return data
}

// SeedWeights returns the static default weight entries, most recent first.
func (g *Generator) SeedWeights() []entry.Weight {
	return []entry.Weight{
		{ID: "1", WeightKg: 62.5, Date: "2024-01-10"},
		{ID: "2", WeightKg: 62.2, Date: "2024-01-03"},
		{ID: "3", WeightKg: 62.8, Date: "2023-12-27"},
		{ID: "4", WeightKg: 63.1, Date: "2023-12-20"},
	}
}

// SeedBloodPressure returns the static default blood-pressure entries.
func (g *Generator) SeedBloodPressure() []entry.BloodPressure {
	return []entry.BloodPressure{
		{ID: "1", Systolic: 118, Diastolic: 78, Date: "2024-01-10"},
		{ID: "2", Systolic: 122, Diastolic: 82, Date: "2024-01-03"},
		{ID: "3", Systolic: 115, Diastolic: 75, Date: "2023-12-27"},
	}
}

// SeedSleep returns the static default sleep entries.
func (g *Generator) SeedSleep() []entry.Sleep {
	return []entry.Sleep{
		{ID: "1", Hours: 7.5, Quality: entry.QualityGood, Date: "2024-01-10"},
		{ID: "2", Hours: 6.8, Quality: entry.QualityFair, Date: "2024-01-09"},
		{ID: "3", Hours: 8.2, Quality: entry.QualityExcellent, Date: "2024-01-08"},
	}
}
