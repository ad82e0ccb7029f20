package domain

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

const (
	MoodMin     = 1
	MoodMax     = 5
	MoodDefault = 3

	// TrendWindow is the number of most recent entries the mood trend
	// is derived from.
	TrendWindow = 10
)

// Entry is one immutable journal reflection with a mood scalar in [1,5].
type Entry struct {
	EntryID   uuid.UUID
	UserID    uuid.UUID
	Body      string
	Mood      int
	CreatedAt time.Time
}

// ValidateMood enforces the stored mood range.
func ValidateMood(mood int) error {
	if mood < MoodMin || mood > MoodMax {
		return fmt.Errorf("%w: mood must be between %d and %d", ErrInvalidInput, MoodMin, MoodMax)
	}
	return nil
}

// TrendPoint is one plotted mood sample, both axes normalized to [0,1].
// X grows with time; Y maps mood 1 to 0 (bottom) and mood 5 to 1 (top).
type TrendPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Trend is the derived, non-persisted mood plot over the most recent
// TrendWindow entries.
type Trend struct {
	Points  []TrendPoint `json:"points"`
	Average float64      `json:"average"`
	Count   int          `json:"count"`
}

// DeriveTrend computes the mood trend from entries sorted ascending by
// creation time. Only the last TrendWindow entries contribute. Average
// is the arithmetic mean of the window's moods, one decimal place.
func DeriveTrend(entries []Entry) Trend {
	if len(entries) > TrendWindow {
		entries = entries[len(entries)-TrendWindow:]
	}
	n := len(entries)
	if n == 0 {
		return Trend{Points: []TrendPoint{}}
	}

	points := make([]TrendPoint, 0, n)
	sum := 0
	for i, e := range entries {
		x := 0.0
		if n > 1 {
			x = float64(i) / float64(n-1)
		}
		y := float64(e.Mood-MoodMin) / float64(MoodMax-MoodMin)
		points = append(points, TrendPoint{X: x, Y: y})
		sum += e.Mood
	}

	avg := math.Round(float64(sum)/float64(n)*10) / 10
	return Trend{Points: points, Average: avg, Count: n}
}
