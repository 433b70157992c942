package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"backend-fitadvisor/internal/store"
)

type Service struct {
	store     *store.Store
	remoteURL string
	client    *http.Client
	timeout   time.Duration
}

// NewService wires the reconciliation sources. remoteURL may be empty, in
// which case the remote fetch stage is skipped entirely.
func NewService(st *store.Store, remoteURL string, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Service{
		store:     st,
		remoteURL: remoteURL,
		client:    &http.Client{Timeout: timeout},
		timeout:   timeout,
	}
}

// Reconcile merges every stored snapshot for the user into one view.
// Later sources overwrite earlier ones field-by-field: registered-user
// list entry, then global snapshot, then per-email snapshot, then the
// remote profile service. Every source is optional; a fetch or parse
// failure degrades to whatever was merged so far.
func (s *Service) Reconcile(ctx context.Context, email string) UserProfile {
	merged := UserProfile{Email: email}

	if entry, ok := s.registeredEntry(ctx, email); ok {
		merged.apply(entry)
	}

	var global Snapshot
	if err := s.store.GetJSON(ctx, store.GlobalProfileKey(), &global); err == nil {
		merged.apply(global)
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Printf("profile: unreadable global snapshot: %v", err)
	}

	var scoped Snapshot
	if err := s.store.GetJSON(ctx, store.UserProfileKey(email), &scoped); err == nil {
		merged.apply(scoped)
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Printf("profile: unreadable snapshot for %s: %v", email, err)
	}

	if remote, ok := s.fetchRemote(ctx, email); ok {
		merged.apply(remote)
	}
	return merged
}

func (s *Service) registeredEntry(ctx context.Context, email string) (Snapshot, bool) {
	var entries []Snapshot
	if err := s.store.GetJSON(ctx, store.RegisteredUsersKey(), &entries); err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Printf("profile: unreadable registered-user list: %v", err)
		}
		return Snapshot{}, false
	}
	for _, entry := range entries {
		if entry.Email == email {
			return entry, true
		}
	}
	return Snapshot{}, false
}

// fetchRemote asks the external profile service for a partial snapshot.
// Any failure is soft: logged, never surfaced to the caller.
func (s *Service) fetchRemote(ctx context.Context, email string) (Snapshot, bool) {
	if s.remoteURL == "" {
		return Snapshot{}, false
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	endpoint := s.remoteURL + "/api/user_profile?email=" + url.QueryEscape(email)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		log.Printf("profile: remote request: %v", err)
		return Snapshot{}, false
	}

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("profile: remote fetch: %v", err)
		return Snapshot{}, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("profile: remote fetch status %d", resp.StatusCode)
		return Snapshot{}, false
	}

	var snapshot Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snapshot); err != nil {
		log.Printf("profile: remote decode: %v", err)
		return Snapshot{}, false
	}
	return snapshot, true
}

// Save persists the per-email snapshot. Both alias keys are written so
// older readers keep working.
func (s *Service) Save(ctx context.Context, email string, snapshot Snapshot) (UserProfile, error) {
	snapshot.normalize()
	if snapshot.Age < 0 || snapshot.Weight < 0 || snapshot.Height < 0 {
		return UserProfile{}, fmt.Errorf("age, weight and height must be non-negative")
	}

	snapshot.Email = email
	snapshot.Gender = snapshot.Sex
	snapshot.AgentType = snapshot.FitnessAgent

	if err := s.store.SetJSON(ctx, store.UserProfileKey(email), snapshot); err != nil {
		return UserProfile{}, err
	}

	merged := UserProfile{Email: email}
	merged.apply(snapshot)
	return merged, nil
}
