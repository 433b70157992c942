// Package progress derives summary metrics and chart series from the
// collected activity records. Everything here is a pure function of
// (records, timeframe, now); recomputation with the same inputs gives the
// same output.
package progress

import (
	"math"
	"time"

	"backend-fitadvisor/internal/activity"
)

// targetCadence assumes workouts on 70% of days when scoring progress.
// A tunable, not a law.
const targetCadence = 0.7

type Metrics struct {
	WorkoutsCompleted int `json:"workouts_completed"`
	RestDaysObserved  int `json:"rest_days_observed"`
	ConsistencyScore  int `json:"consistency_score"`
	ProgressRate      int `json:"progress_rate"`
}

// ComputeMetrics reduces the record list to the four summary statistics
// for one timeframe. historyLen is the user's recommendation-history
// length; zero means no progress can be scored yet.
func ComputeMetrics(records []activity.ActivityRecord, timeframe activity.Timeframe, historyLen int, now time.Time) Metrics {
	days := timeframe.Days()
	startDate := now.AddDate(0, 0, -days).Format(activity.DateLayout)

	var m Metrics
	inWindow := 0
	for _, rec := range records {
		if rec.Date < startDate {
			continue
		}
		inWindow++
		switch rec.Kind {
		case activity.KindWorkout:
			m.WorkoutsCompleted++
		case activity.KindRest:
			m.RestDaysObserved++
		}
	}

	m.ConsistencyScore = boundedShare(inWindow, float64(days))
	if historyLen > 0 {
		m.ProgressRate = boundedShare(m.WorkoutsCompleted, float64(days)*targetCadence)
	}
	return m
}

func boundedShare(count int, target float64) int {
	score := int(math.Round(100 * float64(count) / target))
	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}
