// Package birthdays composes the celebrity lookup and the image-resolution
// chain into the single "fetch celebrities with images for a date" operation.
package birthdays

import (
	"context"
	"time"

	"birthday-twins/cache"
	"birthday-twins/imageresolver"
	"birthday-twins/internal/logger"
	"birthday-twins/models"
)

type Looker interface {
	Lookup(ctx context.Context, date models.DateKey) ([]models.Celebrity, error)
}

type ImageBatcher interface {
	ResolveAll(ctx context.Context, people []models.Celebrity, maxConcurrency int) ([]models.Celebrity, []imageresolver.Report)
}

type FetchOptions struct {
	// BypassCache 는 사용자가 재시도를 요청했을 때 캐시를 읽지 않고 새로 조회한다.
	BypassCache bool
	// SkipImages 는 이미지 해석 단계를 건너뛴다. ImageURL 은 모두 비어 있다.
	SkipImages bool
}

type Result struct {
	Date        models.DateKey         `json:"date"`
	Celebrities []models.Celebrity     `json:"celebrities"`
	Reports     []imageresolver.Report `json:"image_reports,omitempty"`
	Cached      bool                   `json:"cached"`
	FetchedAt   time.Time              `json:"fetched_at"`
}

type Service struct {
	looker      Looker
	images      ImageBatcher
	store       cache.Store
	concurrency int
}

func NewService(looker Looker, images ImageBatcher, store cache.Store) *Service {
	if store == nil {
		store = cache.Noop{}
	}
	return &Service{looker: looker, images: images, store: store}
}

// WithConcurrency 는 이미지 해석 동시 실행 수를 제한한다. 0 이하면 인원 수만큼 실행한다.
func (s *Service) WithConcurrency(n int) *Service {
	s.concurrency = n
	return s
}

// Fetch 는 date 의 유명인 목록을 조회하고 각 인물의 이미지를 병렬로 해석한다.
// 실패는 lookup 단계에서만 발생하며 lookup.ErrLookupFailed 로 감싸져 있다.
func (s *Service) Fetch(ctx context.Context, date models.DateKey, opts FetchOptions) (*Result, error) {
	if !opts.BypassCache && !opts.SkipImages {
		cached, ok, err := s.store.Get(ctx, date)
		if err != nil {
			logger.WarnWithFields("birthday cache read failed", logger.Fields{"date": date.String(), "error": err.Error()})
		}
		if ok {
			return &Result{Date: date, Celebrities: cached, Cached: true, FetchedAt: time.Now()}, nil
		}
	}

	people, err := s.looker.Lookup(ctx, date)
	if err != nil {
		return nil, err
	}

	result := &Result{Date: date, Celebrities: people}
	if !opts.SkipImages && s.images != nil {
		result.Celebrities, result.Reports = s.images.ResolveAll(ctx, people, s.concurrency)

		if err := s.store.Set(ctx, date, result.Celebrities); err != nil {
			logger.WarnWithFields("birthday cache write failed", logger.Fields{"date": date.String(), "error": err.Error()})
		}
	}
	result.FetchedAt = time.Now()

	logger.InfoWithFields("birthdays fetched", logger.Fields{
		"date":        date.String(),
		"count":       len(result.Celebrities),
		"with_images": countWithImages(result.Celebrities),
	})
	return result, nil
}

func countWithImages(list []models.Celebrity) int {
	n := 0
	for _, c := range list {
		if c.HasImage() {
			n++
		}
	}
	return n
}
