package cart

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

const redisSlotPrefix = "cart:"

// RedisSlotStore keeps slots in redis, one value per session key. Values
// never expire on their own; a cleared cart overwrites its slot with an
// empty list rather than deleting the key.
type RedisSlotStore struct {
	rdb *redis.Client
}

func NewRedisSlotStore(rdb *redis.Client) *RedisSlotStore {
	return &RedisSlotStore{rdb: rdb}
}

func (r *RedisSlotStore) Read(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := r.rdb.Get(ctx, redisSlotPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (r *RedisSlotStore) Write(ctx context.Context, key string, data []byte) error {
	return r.rdb.Set(ctx, redisSlotPrefix+key, data, 0).Err()
}
