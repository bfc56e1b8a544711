package state_repo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/redis/go-redis/v9"
)

type RedisStateRepo struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStateRepo(client *redis.Client, ttl time.Duration) *RedisStateRepo {
	return &RedisStateRepo{client: client, ttl: ttl}
}

func generateSessionStateKey(sessionID string) string {
	return fmt.Sprintf("storefront:session:%s:state", sessionID)
}

func (r *RedisStateRepo) Load(ctx context.Context, sessionID string) (*model.SessionState, error) {
	data, err := r.client.Get(ctx, generateSessionStateKey(sessionID)).Bytes()
	if err == redis.Nil {
		return model.NewSessionState(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session state: %w", err)
	}

	var state model.SessionState
	if err := json.Unmarshal(data, &state); err != nil {
		// 壞掉的blob當作沒有資料，重新開始一個session
		return model.NewSessionState(), nil
	}
	if state.Orders == nil {
		state.Orders = []model.Order{}
	}
	if state.Cart.Items == nil {
		state.Cart = model.NewCart()
	}
	return &state, nil
}

func (r *RedisStateRepo) Save(ctx context.Context, sessionID string, state *model.SessionState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to serialize session state: %w", err)
	}

	if err := r.client.Set(ctx, generateSessionStateKey(sessionID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session state: %w", err)
	}
	return nil
}

func (r *RedisStateRepo) Delete(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, generateSessionStateKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete session state: %w", err)
	}
	return nil
}

var _ IStateRepository = (*RedisStateRepo)(nil)
