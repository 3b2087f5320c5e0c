package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/DarkcodeQuan/WebProject/models"
	"github.com/DarkcodeQuan/WebProject/pkg/apperrors"
)

type SessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionRepository(client *redis.Client, ttl time.Duration) *SessionRepository {
	return &SessionRepository{
		client: client,
		ttl:    ttl,
	}
}

func (r *SessionRepository) getKey(id string) string {
	return fmt.Sprintf("session:%s", id)
}

func (r *SessionRepository) Get(ctx context.Context, id string) (*models.Session, error) {
	data, err := r.client.Get(ctx, r.getKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		// No session found
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.StoreUnavailable("Failed to fetch session", err)
	}

	var session models.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, apperrors.StoreUnavailable("Failed to decode session", err)
	}
	return &session, nil
}

func (r *SessionRepository) Save(ctx context.Context, session *models.Session) error {
	session.UpdatedAt = time.Now()

	data, err := json.Marshal(session)
	if err != nil {
		return apperrors.StoreUnavailable("Failed to encode session", err)
	}

	if err := r.client.Set(ctx, r.getKey(session.ID), data, r.ttl).Err(); err != nil {
		return apperrors.StoreUnavailable("Failed to save session", err)
	}
	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, r.getKey(id)).Err(); err != nil {
		return apperrors.StoreUnavailable("Failed to delete session", err)
	}
	return nil
}
