package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"bingo-arena-backend/internal/config"
	"bingo-arena-backend/internal/models"
)

// RedisService is the durable storage backend. Ledger state and session
// snapshots are stored as JSON blobs; redis is treated as opaque key-value
// storage per the ledger's LedgerStore contract.
type RedisService struct {
	client *redis.Client
}

func NewRedisService(cfg *config.Config) (*RedisService, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisURL,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %v", err)
	}

	return &RedisService{client: client}, nil
}

func (s *RedisService) Close() error {
	return s.client.Close()
}

// LoadLedger reads the persisted ledger snapshot. A missing key is not an
// error: a fresh deployment starts with an empty log.
func (s *RedisService) LoadLedger(ctx context.Context) (*models.LedgerState, error) {
	data, err := s.client.Get(ctx, KeyLedgerState).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger state: %v", err)
	}

	var state models.LedgerState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ledger state: %v", err)
	}

	return &state, nil
}

func (s *RedisService) SaveLedger(ctx context.Context, state *models.LedgerState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal ledger state: %v", err)
	}

	return s.client.Set(ctx, KeyLedgerState, data, 0).Err()
}

func (s *RedisService) SaveGameSession(ctx context.Context, session *models.GameSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal game session: %v", err)
	}

	key := fmt.Sprintf(KeyGameSession, session.ID)
	if err := s.client.Set(ctx, key, data, TTLGameSession).Err(); err != nil {
		return fmt.Errorf("failed to save game session: %v", err)
	}

	if err := s.client.ZAdd(ctx, KeySessionsByCreate, redis.Z{
		Score:  float64(session.CreatedAt.Unix()),
		Member: session.ID,
	}).Err(); err != nil {
		return fmt.Errorf("failed to index game session: %v", err)
	}

	s.client.ZRemRangeByRank(ctx, KeySessionsByCreate, 0, int64(-MaxIndexedSessions-1))

	return nil
}

func (s *RedisService) GetGameSession(ctx context.Context, sessionID string) (*models.GameSession, error) {
	key := fmt.Sprintf(KeyGameSession, sessionID)

	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, fmt.Errorf("game session not found: %s", sessionID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game session: %v", err)
	}

	var session models.GameSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game session: %v", err)
	}

	return &session, nil
}

// GetRecentSessions returns persisted session snapshots, newest first.
func (s *RedisService) GetRecentSessions(ctx context.Context, limit int64) ([]*models.GameSession, error) {
	if limit <= 0 || limit > MaxIndexedSessions {
		limit = 50
	}

	ids, err := s.client.ZRevRange(ctx, KeySessionsByCreate, 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get session index: %v", err)
	}

	var sessions []*models.GameSession
	for _, id := range ids {
		session, err := s.GetGameSession(ctx, id)
		if err != nil {
			continue
		}
		sessions = append(sessions, session)
	}

	return sessions, nil
}

func (s *RedisService) DeleteGameSession(ctx context.Context, sessionID string) error {
	key := fmt.Sprintf(KeyGameSession, sessionID)
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return err
	}
	return s.client.ZRem(ctx, KeySessionsByCreate, sessionID).Err()
}

func (s *RedisService) DeleteLedgerState(ctx context.Context) error {
	return s.client.Del(ctx, KeyLedgerState).Err()
}
