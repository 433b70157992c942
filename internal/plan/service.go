package plan

import (
	"context"
	"errors"
	"log"

	"backend-fitadvisor/internal/store"
)

type Service struct {
	store *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

// Get returns the stored weekly plan, or nil when there is none. A
// malformed snapshot degrades to nil rather than failing the caller.
func (s *Service) Get(ctx context.Context, email string) (*WeeklyPlan, error) {
	var plan WeeklyPlan
	err := s.store.GetJSON(ctx, store.WeeklyPlanKey(email), &plan)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		log.Printf("plan: unreadable snapshot for %s: %v", email, err)
		return nil, nil
	}
	return &plan, nil
}

func (s *Service) Save(ctx context.Context, email string, plan WeeklyPlan) error {
	return s.store.SetJSON(ctx, store.WeeklyPlanKey(email), plan)
}
