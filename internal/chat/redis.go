package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	errx "github.com/gamal-store/server/internal/core/error"
	logx "github.com/gamal-store/server/pkg/logger"
)

// RedisHistoryRepository keeps each session's history as a Redis list, one
// JSON document per message, with a TTL refreshed on every append.
type RedisHistoryRepository struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewRedisHistoryRepository(rdb redis.Cmdable, ttl time.Duration) *RedisHistoryRepository {
	return &RedisHistoryRepository{rdb: rdb, ttl: ttl}
}

func (r *RedisHistoryRepository) sessionKey(sessionID string) string {
	return fmt.Sprintf("chat:%s:messages", sessionID)
}

func (r *RedisHistoryRepository) Append(ctx context.Context, sessionID string, msg Message) error {
	b, err := json.Marshal(msg)
	if err != nil {
		logx.Error().Err(err).Str("sessionID", sessionID).Msg("failed to marshal message")
		return fmt.Errorf("marshal message: %w", err)
	}
	key := r.sessionKey(sessionID)

	if err := r.rdb.RPush(ctx, key, b).Err(); err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to push message to redis")
		return errx.WrapRedis(err)
	}
	// extend TTL on touch
	if r.ttl > 0 {
		if ok, err := r.rdb.Expire(ctx, key, r.ttl).Result(); err != nil {
			logx.Error().Err(err).Str("key", key).Msg("failed to set expire")
			return errx.WrapRedis(err)
		} else if !ok {
			logx.Warn().Str("key", key).Dur("ttl", r.ttl).Msg("failed to set TTL on session key")
		}
	}
	return nil
}

func (r *RedisHistoryRepository) Load(ctx context.Context, sessionID string) ([]Message, error) {
	key := r.sessionKey(sessionID)

	rows, err := r.rdb.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		if err == redis.Nil {
			return []Message{}, nil
		}
		logx.Error().Err(err).Str("key", key).Msg("failed to load session history from redis")
		return nil, errx.WrapRedis(err)
	}

	msgs := make([]Message, 0, len(rows))
	for i, s := range rows {
		var m Message
		if err := json.Unmarshal([]byte(s), &m); err != nil {
			// a corrupt entry degrades the history, it does not break the session
			logx.Warn().Err(err).Str("sessionID", sessionID).Int("index", i).Msg("skipping malformed message")
			continue
		}
		msgs = append(msgs, m)
	}
	return msgs, nil
}

func (r *RedisHistoryRepository) Clear(ctx context.Context, sessionID string) error {
	key := r.sessionKey(sessionID)
	if err := r.rdb.Del(ctx, key).Err(); err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to delete session history from redis")
		return errx.WrapRedis(err)
	}
	return nil
}

func (r *RedisHistoryRepository) Count(ctx context.Context, sessionID string) (int, error) {
	key := r.sessionKey(sessionID)
	n, err := r.rdb.LLen(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}
		logx.Error().Err(err).Str("key", key).Msg("failed to get message count from redis")
		return 0, errx.WrapRedis(err)
	}
	return int(n), nil
}

var _ HistoryRepository = (*RedisHistoryRepository)(nil)
