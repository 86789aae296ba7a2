package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Kryptamyr/Packer-Tracker/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// RedisFlashKeyPrefix namespaces per-session flash lists.
const RedisFlashKeyPrefix = "flash:"

// FlashService queues one-shot messages for the next page a session renders.
type FlashService interface {
	Add(ctx context.Context, sessionID string, msg entity.FlashMessage) error
	Pop(ctx context.Context, sessionID string) ([]entity.FlashMessage, error)
}

type redisFlashService struct {
	redisClient *redis.Client
	log         *logrus.Logger
	ttl         time.Duration
}

func NewFlashService(redisClient *redis.Client, log *logrus.Logger, ttl time.Duration) FlashService {
	return &redisFlashService{
		redisClient: redisClient,
		log:         log,
		ttl:         ttl,
	}
}

func flashKey(sessionID string) string {
	return RedisFlashKeyPrefix + sessionID
}

// Add appends msg to the session's list and refreshes the list TTL.
func (s *redisFlashService) Add(ctx context.Context, sessionID string, msg entity.FlashMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode flash message: %w", err)
	}

	key := flashKey(sessionID)
	pipe := s.redisClient.TxPipeline()
	pipe.RPush(ctx, key, payload)
	pipe.Expire(ctx, key, s.ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		s.log.Warnf("Failed to store flash message for session %s: %+v", sessionID, err)
		return fmt.Errorf("store flash message: %w", err)
	}
	return nil
}

// Pop returns all queued messages in insertion order and removes them.
func (s *redisFlashService) Pop(ctx context.Context, sessionID string) ([]entity.FlashMessage, error) {
	key := flashKey(sessionID)

	pipe := s.redisClient.TxPipeline()
	items := pipe.LRange(ctx, key, 0, -1)
	pipe.Del(ctx, key)

	if _, err := pipe.Exec(ctx); err != nil {
		s.log.Warnf("Failed to pop flash messages for session %s: %+v", sessionID, err)
		return nil, fmt.Errorf("pop flash messages: %w", err)
	}

	return decodeFlashes(items.Val(), s.log), nil
}

func decodeFlashes(raw []string, log *logrus.Logger) []entity.FlashMessage {
	messages := make([]entity.FlashMessage, 0, len(raw))
	for _, item := range raw {
		var msg entity.FlashMessage
		if err := json.Unmarshal([]byte(item), &msg); err != nil {
			log.Warnf("Dropping malformed flash message: %+v", err)
			continue
		}
		messages = append(messages, msg)
	}
	return messages
}
