package services

import (
	"context"
	"errors"
	"io"

	"birthday-twins/avatar"
	"birthday-twins/cmd/api/dto"
	"birthday-twins/models"
	"birthday-twins/session"
)

// SessionService 는 세션 컨트롤러 연산을 HTTP 친화적인 결과로 바꾼다.
type SessionService struct {
	store   *session.Store
	posts   *PostService
	avatars *avatar.Builder
	pageURL string
}

func NewSessionService(store *session.Store, posts *PostService, avatars *avatar.Builder, pageURL string) *SessionService {
	return &SessionService{store: store, posts: posts, avatars: avatars, pageURL: pageURL}
}

func (s *SessionService) toDTO(st session.State) dto.SessionDTO {
	return mapSession(st, s.avatars, s.pageURL)
}

func (s *SessionService) Create() dto.SessionDTO {
	return s.toDTO(s.store.Create().Snapshot())
}

func (s *SessionService) controller(id string) (*session.Controller, *APIError) {
	c, err := s.store.Get(id)
	if err != nil {
		return nil, toAPIError(err)
	}
	return c, nil
}

func (s *SessionService) Get(id string) (dto.SessionDTO, *APIError) {
	c, apiErr := s.controller(id)
	if apiErr != nil {
		return dto.SessionDTO{}, apiErr
	}
	return s.toDTO(c.Snapshot()), nil
}

// SetDate 는 조회가 끝날 때까지 기다린다. 조회 실패는 Failed 상태의 스냅샷으로 돌려주고,
// 더 최신 요청에 밀린 경우에만 오류를 낸다.
func (s *SessionService) SetDate(ctx context.Context, id, raw string) (dto.SessionDTO, *APIError) {
	c, apiErr := s.controller(id)
	if apiErr != nil {
		return dto.SessionDTO{}, apiErr
	}
	date, err := models.ParseDateKey(raw)
	if err != nil {
		return dto.SessionDTO{}, toAPIError(err)
	}

	st, err := c.SelectDate(ctx, date)
	return s.loadResult(st, err)
}

func (s *SessionService) Retry(ctx context.Context, id string) (dto.SessionDTO, *APIError) {
	c, apiErr := s.controller(id)
	if apiErr != nil {
		return dto.SessionDTO{}, apiErr
	}
	st, err := c.Retry(ctx)
	return s.loadResult(st, err)
}

func (s *SessionService) loadResult(st session.State, err error) (dto.SessionDTO, *APIError) {
	if err != nil && (errors.Is(err, session.ErrSuperseded) || errors.Is(err, session.ErrNoDate)) {
		return dto.SessionDTO{}, toAPIError(err)
	}
	return s.toDTO(st), nil
}

func (s *SessionService) ToggleSelection(id, name string) (dto.SessionDTO, *APIError) {
	c, apiErr := s.controller(id)
	if apiErr != nil {
		return dto.SessionDTO{}, apiErr
	}
	st, err := c.ToggleSelection(name)
	if err != nil {
		return dto.SessionDTO{}, toAPIError(err)
	}
	return s.toDTO(st), nil
}

func (s *SessionService) SetFriend(id, name, photoDataURI string, upload io.Reader) (dto.SessionDTO, *APIError) {
	c, apiErr := s.controller(id)
	if apiErr != nil {
		return dto.SessionDTO{}, apiErr
	}
	friend, err := s.posts.Friend(name, photoDataURI, upload)
	if err != nil {
		return dto.SessionDTO{}, toAPIError(err)
	}
	return s.toDTO(c.SetFriend(friend)), nil
}

func (s *SessionService) SetStyle(id, theme, font string) (dto.SessionDTO, *APIError) {
	c, apiErr := s.controller(id)
	if apiErr != nil {
		return dto.SessionDTO{}, apiErr
	}
	style, err := models.ParseStyle(theme, font)
	if err != nil {
		return dto.SessionDTO{}, toAPIError(err)
	}
	return s.toDTO(c.SetStyle(style)), nil
}

func (s *SessionService) Generate(id string) (dto.SessionDTO, *APIError) {
	c, apiErr := s.controller(id)
	if apiErr != nil {
		return dto.SessionDTO{}, apiErr
	}
	st, err := c.Generate()
	if err != nil {
		return dto.SessionDTO{}, toAPIError(err)
	}
	return s.toDTO(st), nil
}

// Post 는 마지막으로 생성된 카드 문서를 돌려준다.
func (s *SessionService) Post(id string) (models.Post, *APIError) {
	c, apiErr := s.controller(id)
	if apiErr != nil {
		return models.Post{}, apiErr
	}
	st := c.Snapshot()
	if st.Post == nil {
		return models.Post{}, toAPIError(ErrPostNotGenerated)
	}
	return *st.Post, nil
}
