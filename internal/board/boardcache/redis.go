package boardcache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"talentboard/internal/board"
	"talentboard/internal/session"
)

const redisKeyPrefix = "talentboard:candidate:"

// Redis is a shared TTL cache in front of another Source. Cache failures
// are best-effort: any Redis error falls through to the wrapped source.
type Redis struct {
	client *redis.Client
	next   board.Source
	ttl    time.Duration
	logger zerolog.Logger
}

func NewRedis(client *redis.Client, next board.Source, ttl time.Duration, logger zerolog.Logger) *Redis {
	return &Redis{client: client, next: next, ttl: ttl, logger: logger}
}

func (r *Redis) Lookup(ctx context.Context, sess *session.Session, candidateID int) (board.Summary, error) {
	key := redisKeyPrefix + strconv.Itoa(candidateID)

	cached, err := r.client.Get(ctx, key).Bytes()
	if err == nil {
		var summary board.Summary
		if err := json.Unmarshal(cached, &summary); err == nil {
			return summary, nil
		}
	} else if err != redis.Nil {
		r.logger.Debug().Err(err).Str("key", key).Msg("candidate cache read failed")
	}

	summary, err := r.next.Lookup(ctx, sess, candidateID)
	if err != nil {
		return board.Summary{}, err
	}

	if encoded, err := json.Marshal(summary); err == nil {
		if err := r.client.Set(ctx, key, encoded, r.ttl).Err(); err != nil {
			r.logger.Debug().Err(err).Str("key", key).Msg("candidate cache write failed")
		}
	}
	return summary, nil
}
