// Package session implements the Redis-backed session store. Sessions live
// for a configured TTL and are refreshed on every successful read, so an
// active user never expires mid-flow.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/aradhyadengreee/ai-career-app/internal/common/config"
	"github.com/aradhyadengreee/ai-career-app/internal/common/database"
	apperrors "github.com/aradhyadengreee/ai-career-app/internal/common/errors"
	"github.com/aradhyadengreee/ai-career-app/internal/common/logger"
	"github.com/aradhyadengreee/ai-career-app/internal/common/metrics"
	"github.com/aradhyadengreee/ai-career-app/internal/models"
)

const keyPrefix = "career:session:"

// Store persists sessions in Redis keyed by generated UUID.
type Store struct {
	redis  *database.RedisClient
	ttl    time.Duration
	logger logger.Logger
}

func NewStore(rdb *database.RedisClient, cfg config.SessionConfig, log logger.Logger) *Store {
	return &Store{
		redis:  rdb,
		ttl:    time.Duration(cfg.TTLSeconds) * time.Second,
		logger: log.WithFields(map[string]interface{}{"component": "session-store"}),
	}
}

// Create stores a new session for the profile and returns it with a fresh ID.
func (s *Store) Create(ctx context.Context, profile *models.UserProfile) (*models.Session, error) {
	now := time.Now().UTC()
	sess := &models.Session{
		ID:           uuid.New().String(),
		Profile:      profile,
		CreatedAt:    now,
		LastActivity: now,
	}

	if err := s.write(ctx, sess); err != nil {
		return nil, err
	}

	metrics.ActiveSessions.Inc()
	s.logger.Info("session created", map[string]interface{}{"sessionId": sess.ID})
	return sess, nil
}

// Get loads a session and refreshes its TTL. A missing or expired key is a
// SESSION_NOT_FOUND error; Redis being unreachable is a store error.
func (s *Store) Get(ctx context.Context, id string) (*models.Session, error) {
	raw, err := s.redis.Get(ctx, keyPrefix+id)
	if errors.Is(err, redis.Nil) {
		return nil, apperrors.NewSessionNotFoundError(id)
	}
	if err != nil {
		return nil, apperrors.NewSessionStoreError(err)
	}

	var sess models.Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		return nil, apperrors.NewSessionStoreError(err)
	}

	sess.UpdateActivity()
	if err := s.write(ctx, &sess); err != nil {
		// The read succeeded; a failed refresh only shortens the session.
		s.logger.Warn("session TTL refresh failed", map[string]interface{}{
			"sessionId": id,
			"error":     err.Error(),
		})
	}

	return &sess, nil
}

// Delete removes a session. Deleting an unknown ID is a no-op.
func (s *Store) Delete(ctx context.Context, id string) error {
	removed, err := s.redis.GetClient().Del(ctx, keyPrefix+id).Result()
	if err != nil {
		return apperrors.NewSessionStoreError(err)
	}
	if removed > 0 {
		metrics.ActiveSessions.Dec()
		s.logger.Info("session deleted", map[string]interface{}{"sessionId": id})
	}
	return nil
}

// ListIDs returns the IDs of all live sessions.
func (s *Store) ListIDs(ctx context.Context) ([]string, error) {
	var ids []string
	iter := s.redis.GetClient().Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		ids = append(ids, iter.Val()[len(keyPrefix):])
	}
	if err := iter.Err(); err != nil {
		return nil, apperrors.NewSessionStoreError(err)
	}
	return ids, nil
}

// Count returns the number of live sessions and syncs the gauge, correcting
// for sessions that expired without an explicit delete.
func (s *Store) Count(ctx context.Context) (int, error) {
	ids, err := s.ListIDs(ctx)
	if err != nil {
		return 0, err
	}
	metrics.ActiveSessions.Set(float64(len(ids)))
	return len(ids), nil
}

func (s *Store) write(ctx context.Context, sess *models.Session) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return apperrors.NewSessionStoreError(err)
	}
	if err := s.redis.Set(ctx, keyPrefix+sess.ID, payload, s.ttl); err != nil {
		return apperrors.NewSessionStoreError(err)
	}
	return nil
}
