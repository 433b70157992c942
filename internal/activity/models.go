package activity

// DateLayout is the day-granularity format used in exercise-log keys and
// ActivityRecord dates.
const DateLayout = "2006-01-02"

const (
	KindWorkout = "workout"
	KindRest    = "rest"
)

// ActivityRecord is one observed day of user activity. Synthetic records
// are generated backfill for sparse histories and are never persisted.
type ActivityRecord struct {
	Date           string `json:"date"`
	CompletedCount int    `json:"completed_count"`
	Kind           string `json:"kind"`
	Synthetic      bool   `json:"synthetic,omitempty"`
}

// Timeframe selects the lookback window for metrics and charts.
type Timeframe string

const (
	TimeframeWeek  Timeframe = "week"
	TimeframeMonth Timeframe = "month"
	TimeframeYear  Timeframe = "year"
)

// Days is the metrics window. Note the year chart window is 90 days, not
// 365 (ChartDays); the asymmetry is carried over from the original client.
func (t Timeframe) Days() int {
	switch t {
	case TimeframeMonth:
		return 30
	case TimeframeYear:
		return 365
	default:
		return 7
	}
}

func (t Timeframe) ChartDays() int {
	switch t {
	case TimeframeMonth:
		return 30
	case TimeframeYear:
		return 90
	default:
		return 7
	}
}

// ParseTimeframe accepts the selector values from the UI; empty input
// falls back to week.
func ParseTimeframe(s string) (Timeframe, bool) {
	switch Timeframe(s) {
	case TimeframeWeek, TimeframeMonth, TimeframeYear:
		return Timeframe(s), true
	case "":
		return TimeframeWeek, true
	default:
		return "", false
	}
}
