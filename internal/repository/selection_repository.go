package repository

import (
	"context"
	"strconv"
	"time"

	redisapp "sculpture_shop/internal/storage/redis"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisSelectionRepo keeps each client's selected sculptures in a sorted set
// scored by insertion time, so the selection stays ordered as added and a
// repeated add is a no-op (NX keeps the first score).
type RedisSelectionRepo struct {
	Client *redisapp.Client
}

func NewRedisSelectionRepo(client *redisapp.Client) *RedisSelectionRepo {
	return &RedisSelectionRepo{Client: client}
}

func (r *RedisSelectionRepo) AddSelection(ctx context.Context, clientID uuid.UUID, sculptureID int64) error {
	return r.Client.ZAddNX(ctx, selectionKey(clientID), redis.Z{
		Score:  float64(time.Now().UnixNano()),
		Member: strconv.FormatInt(sculptureID, 10),
	}).Err()
}

func (r *RedisSelectionRepo) RemoveSelection(ctx context.Context, clientID uuid.UUID, sculptureID int64) error {
	return r.Client.ZRem(ctx, selectionKey(clientID), strconv.FormatInt(sculptureID, 10)).Err()
}

func (r *RedisSelectionRepo) ClearSelections(ctx context.Context, clientID uuid.UUID) error {
	return r.Client.Del(ctx, selectionKey(clientID)).Err()
}

func (r *RedisSelectionRepo) GetSelections(ctx context.Context, clientID uuid.UUID) ([]int64, error) {
	members, err := r.Client.ZRange(ctx, selectionKey(clientID), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(members))
	for _, m := range members {
		id, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func (r *RedisSelectionRepo) IsSelected(ctx context.Context, clientID uuid.UUID, sculptureID int64) (bool, error) {
	err := r.Client.ZScore(ctx, selectionKey(clientID), strconv.FormatInt(sculptureID, 10)).Err()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func selectionKey(clientID uuid.UUID) string {
	return "selection:" + clientID.String()
}
