// Package store is the typed key-value layer all user state lives in.
// Values are JSON documents; keys follow the namespaces in keys.go.
package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
)

// ErrNotFound is returned when a key has no stored value. Callers treat it
// as "empty", not as a failure.
var ErrNotFound = errors.New("store: key not found")

type Store struct {
	redis *redis.Client
}

func New(redisClient *redis.Client) *Store {
	return &Store{redis: redisClient}
}

func (s *Store) GetJSON(ctx context.Context, key string, dest any) error {
	raw, err := s.redis.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(raw), dest)
}

func (s *Store) SetJSON(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, key, raw, 0).Err()
}

func (s *Store) Delete(ctx context.Context, key string) error {
	return s.redis.Del(ctx, key).Err()
}

// ScanKeys returns every key starting with prefix. Iteration runs to
// completion so callers see a full snapshot of the namespace.
func (s *Store) ScanKeys(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	iter := s.redis.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return keys, nil
}
