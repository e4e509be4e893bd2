package health

import (
	"errors"
	"time"
)

var (
	ErrMetricsNotFound = errors.New("metrics not found")
	ErrDateDuplicate   = errors.New("metrics already exist for date")
)

// DateLayout is the calendar-date form every persisted record is keyed by.
const DateLayout = "2006-01-02"

// DateOf truncates a point in time to its calendar date.
func DateOf(t time.Time) string {
	return t.Format(DateLayout)
}

// User is the profile snapshot assigned to the session on login. It is
// fetched wholesale and never partially mutated.
type User struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Age       int     `json:"age"`
	HeightCm  int     `json:"height_cm"`
	WeightKg  float64 `json:"weight_kg"`
	AvatarURL string  `json:"avatar_url"`
}

// Metrics is one day of tracked health data. A collection holds at most one
// record per date, ordered ascending by date.
type Metrics struct {
	Date       string  `json:"date"`
	Steps      int     `json:"steps"`
	Calories   int     `json:"calories"`
	HeartRate  int     `json:"heart_rate"`
	SleepHours float64 `json:"sleep_hours"`
}

// Averages holds per-field means over the most recent daily records.
type Averages struct {
	Steps      int     `json:"steps"`
	Calories   int     `json:"calories"`
	HeartRate  int     `json:"heart_rate"`
	SleepHours float64 `json:"sleep_hours"`
}
