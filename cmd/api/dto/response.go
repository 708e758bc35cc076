package dto

// ErrorResponseDTO는 공통 에러 응답 형식을 통일하기 위한 DTO이다.
type ErrorResponseDTO struct {
	Error   string `json:"error" example:"lookup_failed"`
	Message string `json:"message,omitempty" example:"lookup failed: malformed response"`
}

type HealthResponseDTO struct {
	Status string `json:"status" example:"ok"`
	Cache  string `json:"cache,omitempty" example:"down"`
	Error  string `json:"error,omitempty"`
}

type PurgeCacheResponseDTO struct {
	Date   string `json:"date" example:"03-14"`
	Purged bool   `json:"purged"`
}
