package services

import (
	"context"
	"errors"
	"net/http"

	"birthday-twins/avatar"
	"birthday-twins/lookup"
	"birthday-twins/models"
	"birthday-twins/photo"
	"birthday-twins/post"
	"birthday-twins/session"
)

var (
	ErrPostNotGenerated    = errors.New("post has not been generated")
	ErrRendererUnavailable = errors.New("card renderer unavailable")
)

// APIError 는 핸들러가 그대로 응답으로 옮길 수 있는 서비스 오류다.
type APIError struct {
	StatusCode int
	ErrorCode  string
	Cause      error
}

func (e *APIError) Error() string {
	if e == nil {
		return "internal_error"
	}
	return e.ErrorCode
}

func (e *APIError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Message 는 응답에 실을 사람용 설명이다. 5xx 는 내부 원인을 숨긴다.
// 조회 실패는 원인(전송 오류, 응답 형식, 할당량)과 무관하게 같은 문구 하나만 내보낸다.
func (e *APIError) Message() string {
	if e == nil || e.Cause == nil {
		return ""
	}
	if errors.Is(e.Cause, lookup.ErrLookupFailed) {
		return lookup.ErrLookupFailed.Error()
	}
	if e.StatusCode >= http.StatusInternalServerError {
		return ""
	}
	return e.Cause.Error()
}

func toAPIError(err error) *APIError {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	status, code := classify(err)
	return &APIError{StatusCode: status, ErrorCode: code, Cause: err}
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, lookup.ErrLookupFailed):
		return http.StatusBadGateway, "lookup_failed"
	case errors.Is(err, models.ErrInvalidDate):
		return http.StatusBadRequest, "invalid_date"
	case errors.Is(err, models.ErrInvalidTheme), errors.Is(err, models.ErrInvalidFont):
		return http.StatusBadRequest, "invalid_style"
	case errors.Is(err, avatar.ErrInvalidVariant):
		return http.StatusBadRequest, "invalid_variant"
	case errors.Is(err, photo.ErrTooLarge):
		return http.StatusRequestEntityTooLarge, "photo_too_large"
	case errors.Is(err, photo.ErrUnsupportedImage), errors.Is(err, photo.ErrInvalidDataURI):
		return http.StatusBadRequest, "invalid_photo"
	case errors.Is(err, post.ErrEmptyFriendName):
		return http.StatusUnprocessableEntity, "empty_friend_name"
	case errors.Is(err, post.ErrNoCelebritiesAvailable):
		return http.StatusUnprocessableEntity, "no_celebrities_available"
	case errors.Is(err, session.ErrNotFound):
		return http.StatusNotFound, "session_not_found"
	case errors.Is(err, session.ErrSuperseded):
		return http.StatusConflict, "superseded"
	case errors.Is(err, session.ErrNotLoaded):
		return http.StatusConflict, "not_loaded"
	case errors.Is(err, session.ErrNoDate):
		return http.StatusConflict, "no_date"
	case errors.Is(err, session.ErrUnknownCelebrity):
		return http.StatusBadRequest, "unknown_celebrity"
	case errors.Is(err, ErrPostNotGenerated):
		return http.StatusConflict, "post_not_generated"
	case errors.Is(err, ErrRendererUnavailable):
		return http.StatusServiceUnavailable, "renderer_unavailable"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "timeout"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}
