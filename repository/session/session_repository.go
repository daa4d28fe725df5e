package session

import (
	"context"
	"time"

	redisclient "github.com/hoangtm/restaurant-ordering/cmd/redis"
	redislib "github.com/redis/go-redis/v9"
)

// SessionRepository keeps login sessions in redis keyed by token id.
type SessionRepository interface {
	SetSession(ctx context.Context, sessionID, userID string, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (string, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

type repo struct{}

func NewSessionRepository() SessionRepository {
	return &repo{}
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

func (r *repo) SetSession(ctx context.Context, sessionID, userID string, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Set(ctx, sessionKey(sessionID), userID, ttl).Err()
}

func (r *repo) GetSession(ctx context.Context, sessionID string) (string, error) {
	client := redisclient.Get()
	if client == nil {
		return "", nil
	}
	val, err := client.Get(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		if err == redislib.Nil {
			return "", nil
		}
		return "", err
	}
	return val, nil
}

func (r *repo) DeleteSession(ctx context.Context, sessionID string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, sessionKey(sessionID)).Err()
}
