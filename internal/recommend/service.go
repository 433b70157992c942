package recommend

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"backend-fitadvisor/internal/store"
	"backend-fitadvisor/internal/stream"

	"github.com/google/uuid"
)

type Service struct {
	store *store.Store
	hub   *stream.Hub
	now   func() time.Time
}

func NewService(st *store.Store, hub *stream.Hub) *Service {
	return &Service{store: st, hub: hub, now: time.Now}
}

// History returns the stored recommendation entries, newest first. A
// missing or unreadable history reads as empty.
func (s *Service) History(ctx context.Context, email string) ([]Entry, error) {
	var entries []Entry
	err := s.store.GetJSON(ctx, store.RecommendationHistoryKey(email), &entries)
	if errors.Is(err, store.ErrNotFound) {
		return []Entry{}, nil
	}
	if err != nil {
		log.Printf("recommend: unreadable history for %s: %v", email, err)
		return []Entry{}, nil
	}
	return entries, nil
}

// HistoryLen feeds the progress-rate metric; it is zero for users who
// never requested a recommendation.
func (s *Service) HistoryLen(ctx context.Context, email string) int {
	entries, err := s.History(ctx, email)
	if err != nil {
		return 0
	}
	return len(entries)
}

// Append stores a new recommendation at the head of the history and
// broadcasts it so an already-rendered client can patch it in.
func (s *Service) Append(ctx context.Context, email, text, mode, agentType string) (Entry, error) {
	if text == "" {
		return Entry{}, errors.New("recommendation text required")
	}

	entry := Entry{
		ID:        uuid.NewString(),
		Email:     email,
		Text:      text,
		Mode:      mode,
		AgentType: agentType,
		CreatedAt: s.now(),
	}

	entries, err := s.History(ctx, email)
	if err != nil {
		return Entry{}, err
	}
	entries = append([]Entry{entry}, entries...)

	if err := s.store.SetJSON(ctx, store.RecommendationHistoryKey(email), entries); err != nil {
		return Entry{}, err
	}

	if s.hub != nil {
		if payload, err := json.Marshal(entry); err == nil {
			s.hub.Broadcast(email, payload)
		}
	}
	return entry, nil
}
