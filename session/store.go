package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"birthday-twins/internal/logger"
)

const defaultTTL = 30 * time.Minute

type entry struct {
	controller *Controller
	lastSeen   time.Time
}

// Store 는 세션 컨트롤러를 메모리에 보관한다. 마지막 접근 후 ttl 이 지나면 만료된다.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*entry
	fetcher  Fetcher
	ttl      time.Duration
	now      func() time.Time
}

func NewStore(fetcher Fetcher, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Store{
		sessions: make(map[string]*entry),
		fetcher:  fetcher,
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *Store) Create() *Controller {
	id := uuid.NewString()
	c := NewController(id, s.fetcher)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = &entry{controller: c, lastSeen: s.now()}
	return c
}

func (s *Store) Get(id string) (*Controller, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	now := s.now()
	if now.Sub(e.lastSeen) > s.ttl {
		delete(s.sessions, id)
		return nil, ErrNotFound
	}
	e.lastSeen = now
	return e.controller, nil
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep 은 만료된 세션을 지우고 지운 개수를 반환한다.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, e := range s.sessions {
		if now.Sub(e.lastSeen) > s.ttl {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// RunJanitor 는 ctx 가 끝날 때까지 interval 마다 Sweep 을 호출한다.
func (s *Store) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				logger.DebugWithFields("expired sessions removed", logger.Fields{"count": n})
			}
		}
	}
}
