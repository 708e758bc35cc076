package services

import (
	"context"

	"birthday-twins/cache"
	"birthday-twins/cmd/api/dto"
	"birthday-twins/internal/logger"
	"birthday-twins/models"
)

// AdminService 는 운영자가 잘못된 조회 결과를 캐시에서 내릴 때 쓴다.
type AdminService struct {
	store cache.Store
}

func NewAdminService(store cache.Store) *AdminService {
	return &AdminService{store: store}
}

func (s *AdminService) PurgeDate(ctx context.Context, raw string) (dto.PurgeCacheResponseDTO, *APIError) {
	date, err := models.ParseDateKey(raw)
	if err != nil {
		return dto.PurgeCacheResponseDTO{}, toAPIError(err)
	}

	_, cached, err := s.store.Get(ctx, date)
	if err != nil {
		return dto.PurgeCacheResponseDTO{}, toAPIError(err)
	}
	if err := s.store.Delete(ctx, date); err != nil {
		return dto.PurgeCacheResponseDTO{}, toAPIError(err)
	}

	logger.InfoWithFields("cache entry purged", logger.Fields{"date": date.String(), "existed": cached})
	return dto.PurgeCacheResponseDTO{Date: date.String(), Purged: cached}, nil
}
