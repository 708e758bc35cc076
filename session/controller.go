package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"birthday-twins/birthdays"
	"birthday-twins/internal/logger"
	"birthday-twins/lookup"
	"birthday-twins/models"
	"birthday-twins/post"
)

var (
	ErrNotFound         = errors.New("session not found")
	ErrSuperseded       = errors.New("request superseded by a newer one")
	ErrNotLoaded        = errors.New("celebrities are not loaded")
	ErrNoDate           = errors.New("no date selected")
	ErrUnknownCelebrity = errors.New("celebrity is not in the current result set")
)

type Fetcher interface {
	Fetch(ctx context.Context, date models.DateKey, opts birthdays.FetchOptions) (*birthdays.Result, error)
}

// Controller 는 한 사용자의 "현재 결과 집합"을 독점한다.
// 모든 비동기 작업은 시작 시점의 Generation 을 기억하고, 끝났을 때 Generation 이
// 바뀌었으면 결과를 버린다.
type Controller struct {
	mu      sync.Mutex
	state   State
	fetcher Fetcher
	now     func() time.Time
}

func NewController(id string, fetcher Fetcher) *Controller {
	c := &Controller{fetcher: fetcher, now: time.Now}
	c.state = State{
		ID:        id,
		Status:    StatusIdle,
		Style:     models.DefaultStyle(),
		UpdatedAt: c.now(),
	}.withSelection(models.Selection{})
	return c
}

func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// SelectDate 는 결과 집합을 비우고 date 로 새 조회를 시작한 뒤 완료까지 기다린다.
// 기다리는 동안 다른 날짜 선택이나 재시도가 들어오면 ErrSuperseded 를 반환하고 결과는 버려진다.
func (c *Controller) SelectDate(ctx context.Context, date models.DateKey) (State, error) {
	return c.load(ctx, date, birthdays.FetchOptions{})
}

// Retry 는 현재 날짜로 캐시를 우회해 다시 조회한다.
func (c *Controller) Retry(ctx context.Context) (State, error) {
	c.mu.Lock()
	date := c.state.Date
	c.mu.Unlock()

	if date.IsZero() {
		return c.Snapshot(), ErrNoDate
	}
	return c.load(ctx, date, birthdays.FetchOptions{BypassCache: true})
}

func (c *Controller) load(ctx context.Context, date models.DateKey, opts birthdays.FetchOptions) (State, error) {
	gen := c.begin(date)

	result, err := c.fetcher.Fetch(ctx, date, opts)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Generation != gen {
		logger.DebugWithFields("discarding stale fetch result", logger.Fields{
			"session_id": c.state.ID,
			"generation": gen,
			"current":    c.state.Generation,
		})
		return c.state, ErrSuperseded
	}

	next := c.state
	next.UpdatedAt = c.now()
	if err != nil {
		// 원인은 로그에만 남기고 상태에는 고정 문구를 둔다.
		logger.ErrorWithFields("birthday lookup failed", logger.Fields{
			"session_id": c.state.ID,
			"date":       c.state.Date.String(),
			"error":      err.Error(),
		})
		next.Status = StatusFailed
		next.Error = lookup.ErrLookupFailed.Error()
		c.state = next
		return next, err
	}

	next.Status = StatusLoaded
	next.Celebrities = result.Celebrities
	next.Error = ""
	c.state = next
	return next, nil
}

// begin 은 Loading 상태로 전이하고 새 Generation 을 돌려준다.
func (c *Controller) begin(date models.DateKey) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.state.withSelection(models.Selection{})
	next.Status = StatusLoading
	next.Generation = c.state.Generation + 1
	next.Date = date
	next.Celebrities = nil
	next.Post = nil
	next.Error = ""
	next.UpdatedAt = c.now()
	c.state = next
	return next.Generation
}

// ToggleSelection 은 이름을 선택/해제한다. 이미 3명이면 추가는 무시된다.
func (c *Controller) ToggleSelection(name string) (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Status != StatusLoaded && c.state.Status != StatusPostGenerated {
		return c.state, ErrNotLoaded
	}
	if _, ok := models.FindCelebrity(c.state.Celebrities, name); !ok {
		return c.state, fmt.Errorf("%w: %q", ErrUnknownCelebrity, name)
	}

	next := c.state.withSelection(c.state.selection.Toggle(name))
	next.UpdatedAt = c.now()
	c.state = next
	return next, nil
}

func (c *Controller) SetFriend(friend models.Friend) State {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.state
	next.Friend = friend
	next.UpdatedAt = c.now()
	c.state = next
	return next
}

func (c *Controller) SetStyle(style models.Style) State {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.state
	next.Style = style
	next.UpdatedAt = c.now()
	c.state = next
	return next
}

// Generate 는 현재 상태로 Post 를 만들어 통째로 교체한다.
// 친구 이름은 상태와 무관하게 가장 먼저 본다. 검증에 실패하면 이미 조회한 데이터는 그대로 두고 오류만 반환한다.
func (c *Controller) Generate() (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.Friend.HasName() {
		return c.state, post.ErrEmptyFriendName
	}
	if c.state.Status != StatusLoaded && c.state.Status != StatusPostGenerated {
		return c.state, ErrNotLoaded
	}

	p, err := post.Assemble(c.state.Friend, c.state.selection, c.state.Celebrities, c.state.Date, c.state.Style)
	if err != nil {
		return c.state, err
	}

	next := c.state
	next.Status = StatusPostGenerated
	next.Post = &p
	next.UpdatedAt = c.now()
	c.state = next
	return next, nil
}
