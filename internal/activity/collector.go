package activity

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"sort"
	"time"

	"backend-fitadvisor/internal/store"
)

// Backfill tuning. With fewer than minRealRecords logged days, uncovered
// days in the chart window are filled at backfillRate so charts stay
// populated for new users.
const (
	minRealRecords  = 5
	backfillRate    = 0.7
	restProbability = 0.3
	maxSyntheticSet = 5
)

type Collector struct {
	store *store.Store
	now   func() time.Time
	rng   *rand.Rand
}

func NewCollector(st *store.Store) *Collector {
	return &Collector{
		store: st,
		now:   time.Now,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewSeededCollector pins the clock and the backfill generator, for
// deterministic output.
func NewSeededCollector(st *store.Store, seed int64, now func() time.Time) *Collector {
	return &Collector{
		store: st,
		now:   now,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// Collect scans the user's exercise logs and returns one record per day,
// ascending by date. Malformed logs are skipped, never fatal. Sparse
// histories are padded with synthetic records; a synthetic record never
// replaces a real one.
func (c *Collector) Collect(ctx context.Context, email string, timeframe Timeframe) ([]ActivityRecord, error) {
	keys, err := c.store.ScanKeys(ctx, store.ExerciseLogPrefix(email))
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]ActivityRecord, len(keys))
	for _, key := range keys {
		date := store.ExerciseLogDate(email, key)
		if _, err := time.Parse(DateLayout, date); err != nil {
			log.Printf("activity: skipping log key %q: bad date segment", key)
			continue
		}

		var exercises []any
		if err := c.store.GetJSON(ctx, key, &exercises); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				continue
			}
			log.Printf("activity: skipping log key %q: %v", key, err)
			continue
		}

		byDate[date] = ActivityRecord{
			Date:           date,
			CompletedCount: len(exercises),
			Kind:           KindWorkout,
		}
	}

	if len(byDate) < minRealRecords {
		c.backfill(byDate, timeframe)
	}

	records := make([]ActivityRecord, 0, len(byDate))
	for _, rec := range byDate {
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Date < records[j].Date })
	return records, nil
}

func (c *Collector) backfill(byDate map[string]ActivityRecord, timeframe Timeframe) {
	today := c.now()
	for i := 0; i < timeframe.ChartDays(); i++ {
		date := today.AddDate(0, 0, -i).Format(DateLayout)
		if _, covered := byDate[date]; covered {
			continue
		}
		if c.rng.Float64() >= backfillRate {
			continue
		}

		kind := KindWorkout
		if c.rng.Float64() < restProbability {
			kind = KindRest
		}
		byDate[date] = ActivityRecord{
			Date:           date,
			CompletedCount: 1 + c.rng.Intn(maxSyntheticSet),
			Kind:           kind,
			Synthetic:      true,
		}
	}
}

// LogExercises persists the completed-exercise list for one day. An empty
// date means today.
func (c *Collector) LogExercises(ctx context.Context, email, date string, exercises []string) (ActivityRecord, error) {
	if date == "" {
		date = c.now().Format(DateLayout)
	}
	if _, err := time.Parse(DateLayout, date); err != nil {
		return ActivityRecord{}, errors.New("date must be YYYY-MM-DD")
	}
	if exercises == nil {
		exercises = []string{}
	}

	if err := c.store.SetJSON(ctx, store.ExerciseLogKey(email, date), exercises); err != nil {
		return ActivityRecord{}, err
	}
	return ActivityRecord{
		Date:           date,
		CompletedCount: len(exercises),
		Kind:           KindWorkout,
	}, nil
}
