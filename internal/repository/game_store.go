package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/lk16/reversi/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	GamesKey = "games"
)

var ErrGameNotFound = errors.New("game not found")

// GameStore stores live games.
type GameStore interface {
	Save(ctx context.Context, record *models.GameRecord) error
	Load(ctx context.Context, id string) (*models.GameRecord, error)
	Delete(ctx context.Context, id string) error
}

// RedisGameStore keeps live games as JSON in a single Redis hash.
type RedisGameStore struct {
	redis *redis.Client
	ttl   time.Duration
}

// NewRedisGameStore creates a RedisGameStore. Every write resets the TTL of
// the hash, so games expire once the server has been idle for ttl.
func NewRedisGameStore(client *redis.Client, ttl time.Duration) *RedisGameStore {
	return &RedisGameStore{
		redis: client,
		ttl:   ttl,
	}
}

// Save implements GameStore.
func (s *RedisGameStore) Save(ctx context.Context, record *models.GameRecord) error {
	jsonData, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("error marshaling game: %w", err)
	}

	pipe := s.redis.TxPipeline()
	pipe.HSet(ctx, GamesKey, record.ID, jsonData)
	pipe.Expire(ctx, GamesKey, s.ttl)

	if _, err = pipe.Exec(ctx); err != nil {
		return fmt.Errorf("error storing game: %w", err)
	}

	return nil
}

// Load implements GameStore.
func (s *RedisGameStore) Load(ctx context.Context, id string) (*models.GameRecord, error) {
	jsonData, err := s.redis.HGet(ctx, GamesKey, id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrGameNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("error getting game: %w", err)
	}

	var record models.GameRecord
	if err = json.Unmarshal(jsonData, &record); err != nil {
		return nil, fmt.Errorf("error unmarshaling game: %w", err)
	}

	return &record, nil
}

// Delete implements GameStore.
func (s *RedisGameStore) Delete(ctx context.Context, id string) error {
	if err := s.redis.HDel(ctx, GamesKey, id).Err(); err != nil {
		return fmt.Errorf("error deleting game: %w", err)
	}
	return nil
}

// MemoryGameStore is a GameStore for single-process deployments and tests.
type MemoryGameStore struct {
	// data stores JSON so callers never share a record with the store
	data map[string][]byte

	// dataMutex protects data
	dataMutex sync.Mutex
}

// NewMemoryGameStore creates an empty MemoryGameStore.
func NewMemoryGameStore() *MemoryGameStore {
	return &MemoryGameStore{
		data: make(map[string][]byte),
	}
}

// Save implements GameStore.
func (s *MemoryGameStore) Save(_ context.Context, record *models.GameRecord) error {
	jsonData, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("error marshaling game: %w", err)
	}

	s.dataMutex.Lock()
	defer s.dataMutex.Unlock()

	s.data[record.ID] = jsonData
	return nil
}

// Load implements GameStore.
func (s *MemoryGameStore) Load(_ context.Context, id string) (*models.GameRecord, error) {
	s.dataMutex.Lock()
	jsonData, ok := s.data[id]
	s.dataMutex.Unlock()

	if !ok {
		return nil, ErrGameNotFound
	}

	var record models.GameRecord
	if err := json.Unmarshal(jsonData, &record); err != nil {
		return nil, fmt.Errorf("error unmarshaling game: %w", err)
	}

	return &record, nil
}

// Delete implements GameStore.
func (s *MemoryGameStore) Delete(_ context.Context, id string) error {
	s.dataMutex.Lock()
	defer s.dataMutex.Unlock()

	delete(s.data, id)
	return nil
}

// Len returns the number of stored games.
func (s *MemoryGameStore) Len() int {
	s.dataMutex.Lock()
	defer s.dataMutex.Unlock()

	return len(s.data)
}
