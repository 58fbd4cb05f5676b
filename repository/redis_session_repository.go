package repository

import (
	"context"
	"encoding/json"
	"time"

	"plantonize-web/models"

	"github.com/go-redis/redis/v8"
)

// SessionRepository stores the server-side sessions that back the browser
// cookie. Find returns (nil, nil) when the session id is unknown.
type SessionRepository interface {
	Save(ctx context.Context, sid string, session models.Session) error
	Find(ctx context.Context, sid string) (*models.Session, error)
	Delete(ctx context.Context, sid string) error
}

type RedisSessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionRepository(client *redis.Client, ttl time.Duration) *RedisSessionRepository {
	return &RedisSessionRepository{client: client, ttl: ttl}
}

func sessionKey(sid string) string {
	return "session:" + sid
}

func (r *RedisSessionRepository) Save(ctx context.Context, sid string, session models.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, sessionKey(sid), data, r.ttl).Err()
}

func (r *RedisSessionRepository) Find(ctx context.Context, sid string) (*models.Session, error) {
	data, err := r.client.Get(ctx, sessionKey(sid)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var session models.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *RedisSessionRepository) Delete(ctx context.Context, sid string) error {
	return r.client.Del(ctx, sessionKey(sid)).Err()
}
