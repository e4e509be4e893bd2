package entry

import (
	"errors"
	"time"

	"github.com/vitalog/vitalog/internal/domain"
)

var (
	ErrInvalidQuality = errors.New("invalid sleep quality")
)

const (
	EventWeightAdded        = "entry.weight.added"
	EventBloodPressureAdded = "entry.blood_pressure.added"
	EventSleepAdded         = "entry.sleep.added"
)

// Quality grades a night of sleep.
type Quality string

const (
	QualityPoor      Quality = "poor"
	QualityFair      Quality = "fair"
	QualityGood      Quality = "good"
	QualityExcellent Quality = "excellent"
)

func (q Quality) Valid() bool {
	switch q {
	case QualityPoor, QualityFair, QualityGood, QualityExcellent:
		return true
	}
	return false
}

type Weight struct {
	ID       string  `json:"id"`
	WeightKg float64 `json:"weight"`
	Date     string  `json:"date"`
}

type BloodPressure struct {
	ID        string `json:"id"`
	Systolic  int    `json:"systolic"`
	Diastolic int    `json:"diastolic"`
	Date      string `json:"date"`
}

type Sleep struct {
	ID      string  `json:"id"`
	Hours   float64 `json:"hours"`
	Quality Quality `json:"quality"`
	Date    string  `json:"date"`
}

func NewWeight(id string, kg float64, date string) Weight {
	return Weight{ID: id, WeightKg: kg, Date: date}
}

func NewBloodPressure(id string, systolic, diastolic int, date string) BloodPressure {
	return BloodPressure{ID: id, Systolic: systolic, Diastolic: diastolic, Date: date}
}

func NewSleep(id string, hours float64, quality Quality, date string) Sleep {
	return Sleep{ID: id, Hours: hours, Quality: quality, Date: date}
}

type AddedEvent struct {
	At      time.Time
	Kind    string
	EntryID string
	Date    string
}

func (e AddedEvent) Type() string {
	return e.Kind
}

func (e AddedEvent) PublishedAt() time.Time {
	return e.At
}

var _ domain.Event = AddedEvent{}
