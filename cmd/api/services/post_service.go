package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"birthday-twins/avatar"
	"birthday-twins/cmd/api/dto"
	"birthday-twins/internal/logger"
	"birthday-twins/models"
	"birthday-twins/photo"
	"birthday-twins/post"
	"birthday-twins/renderer"
	"birthday-twins/share"
)

// CardCapturer 는 카드 HTML 을 PNG 로 바꾼다. 운영에서는 헤드리스 크롬을 쓴다.
type CardCapturer interface {
	CardPNG(ctx context.Context, html string) ([]byte, error)
}

// PostService 는 카드 조립과 렌더링/내보내기를 담당한다.
//
// - avatars: 브라우저용 카드 HTML 의 플레이스홀더 URL
// - capturer: PNG 내보내기. 외부 아바타 서비스에 의존하지 않도록 플레이스홀더를 인라인한다.
type PostService struct {
	avatars  *avatar.Builder
	capturer CardCapturer
	pageURL  string
}

func NewPostService(avatars *avatar.Builder, capturer CardCapturer, pageURL string) *PostService {
	return &PostService{avatars: avatars, capturer: capturer, pageURL: pageURL}
}

// Create 는 요청 하나에 담긴 목록/선택/친구 정보로 바로 Post 를 만든다.
// 친구 이름이 비어 있으면 다른 입력은 보지 않고 바로 거절한다.
func (s *PostService) Create(in dto.CreatePostRequestDTO) (models.Post, *APIError) {
	if strings.TrimSpace(in.Friend.Name) == "" {
		return models.Post{}, toAPIError(post.ErrEmptyFriendName)
	}

	friend, err := s.Friend(in.Friend.Name, in.Friend.Photo, nil)
	if err != nil {
		return models.Post{}, toAPIError(err)
	}
	date, err := models.ParseDateKey(in.Date)
	if err != nil {
		return models.Post{}, toAPIError(err)
	}
	style, err := models.ParseStyle(in.Theme, in.Font)
	if err != nil {
		return models.Post{}, toAPIError(err)
	}

	all := make([]models.Celebrity, 0, len(in.Celebrities))
	for _, c := range in.Celebrities {
		all = append(all, models.Celebrity{Name: c.Name, Description: c.Description, ImageURL: c.ImageURL})
	}

	p, err := post.Assemble(friend, models.NewSelection(in.Selection...), all, date, style)
	if err != nil {
		return models.Post{}, toAPIError(err)
	}
	return p, nil
}

// Friend 는 이름과 사진(data URI 또는 업로드)을 정규화한다. 업로드가 있으면 data URI 보다 우선한다.
func (s *PostService) Friend(name, photoDataURI string, upload io.Reader) (models.Friend, error) {
	f := models.Friend{Name: strings.TrimSpace(name)}

	switch {
	case upload != nil:
		uri, err := photo.Normalize(upload)
		if err != nil {
			return models.Friend{}, err
		}
		f.Photo = uri
	case strings.TrimSpace(photoDataURI) != "":
		uri, err := photo.NormalizeDataURI(photoDataURI)
		if err != nil {
			return models.Friend{}, err
		}
		f.Photo = uri
	}
	return f, nil
}

func (s *PostService) ToDTO(p models.Post) dto.PostDTO {
	return mapPost(p, s.avatars, s.pageURL)
}

func (s *PostService) CardHTML(p models.Post) (string, *APIError) {
	out, err := renderer.CardHTML(p, s.avatars.URL)
	if err != nil {
		return "", toAPIError(err)
	}
	return out, nil
}

// CardPNG 는 PNG 바이트와 다운로드 파일 이름을 돌려준다.
func (s *PostService) CardPNG(ctx context.Context, p models.Post) ([]byte, string, *APIError) {
	if s.capturer == nil {
		return nil, "", toAPIError(ErrRendererUnavailable)
	}

	html, err := renderer.CardHTML(p, avatar.DataURI)
	if err != nil {
		return nil, "", toAPIError(err)
	}

	png, err := s.capturer.CardPNG(ctx, html)
	if err != nil {
		logger.ErrorWithFields("card capture failed", logger.Fields{"post_id": p.ID, "error": err.Error()})
		return nil, "", toAPIError(fmt.Errorf("%w: %w", ErrRendererUnavailable, err))
	}
	return png, share.DownloadFilename(p.Friend.Name), nil
}

func (s *PostService) Share(friendName, pageURL string) dto.ShareDTO {
	if pageURL == "" {
		pageURL = s.pageURL
	}
	links := share.Build(friendName, pageURL)
	return dto.ShareDTO{
		Text:             links.Text,
		Twitter:          links.Twitter,
		Facebook:         links.Facebook,
		Instagram:        links.Instagram,
		DownloadFilename: links.DownloadFilename,
	}
}
