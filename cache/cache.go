package cache

import (
	"context"
	"fmt"
	"time"

	"birthday-twins/config"
	"birthday-twins/models"
)

// Store 는 날짜별 조회 결과(이미지 해석까지 끝난 목록)를 보관한다.
// 캐시 실패는 조회 실패가 아니므로 호출자는 error 를 로그로만 남긴다.
type Store interface {
	Get(ctx context.Context, date models.DateKey) ([]models.Celebrity, bool, error)
	Set(ctx context.Context, date models.DateKey, celebrities []models.Celebrity) error
	Delete(ctx context.Context, date models.DateKey) error
}

// Pinger 는 헬스 체크가 가능한 원격 저장소가 구현한다.
type Pinger interface {
	Ping(ctx context.Context) error
}

const keyPrefix = "birthday-twins:celebrities:"

func key(date models.DateKey) string {
	return keyPrefix + date.String()
}

// NewFromConfig 는 cache.backend 값에 따라 Store 를 만든다.
func NewFromConfig(ctx context.Context, cfg config.CacheConfig) (Store, error) {
	switch cfg.Backend {
	case "", "memory":
		return NewMemoryStore(cfg.TTL), nil
	case "redis":
		return NewRedisStore(ctx, cfg.Redis, cfg.TTL)
	case "none":
		return Noop{}, nil
	default:
		return nil, fmt.Errorf("unsupported cache backend: %s", cfg.Backend)
	}
}

// Noop 은 아무것도 저장하지 않는다.
type Noop struct{}

func (Noop) Get(context.Context, models.DateKey) ([]models.Celebrity, bool, error) {
	return nil, false, nil
}

func (Noop) Set(context.Context, models.DateKey, []models.Celebrity) error { return nil }

func (Noop) Delete(context.Context, models.DateKey) error { return nil }

func ttlOrDefault(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return 6 * time.Hour
	}
	return ttl
}
