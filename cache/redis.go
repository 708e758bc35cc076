package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"birthday-twins/config"
	"birthday-twins/internal/logger"
	"birthday-twins/models"

	"github.com/redis/go-redis/v9"
)

// RedisStore 는 여러 API 인스턴스가 같은 날짜 결과를 공유할 때 사용한다.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(ctx context.Context, cfg config.RedisConfig, ttl time.Duration) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed (addr=%s): %w", cfg.Addr, err)
	}

	logger.InfoWithFields("redis cache connected", logger.Fields{"addr": cfg.Addr, "db": cfg.DB})
	return NewRedisStoreWithClient(client, ttl), nil
}

func NewRedisStoreWithClient(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttlOrDefault(ttl)}
}

func (r *RedisStore) Get(ctx context.Context, date models.DateKey) ([]models.Celebrity, bool, error) {
	value, err := r.client.Get(ctx, key(date)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get %s: %w", key(date), err)
	}

	var out []models.Celebrity
	if err := json.Unmarshal([]byte(value), &out); err != nil {
		return nil, false, fmt.Errorf("cache unmarshal %s: %w", key(date), err)
	}
	return out, true, nil
}

func (r *RedisStore) Set(ctx context.Context, date models.DateKey, celebrities []models.Celebrity) error {
	data, err := json.Marshal(celebrities)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, key(date), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key(date), err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, date models.DateKey) error {
	if err := r.client.Del(ctx, key(date)).Err(); err != nil {
		return fmt.Errorf("cache delete %s: %w", key(date), err)
	}
	return nil
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}

func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
