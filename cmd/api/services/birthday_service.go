package services

import (
	"context"
	"strings"
	"time"

	"birthday-twins/avatar"
	"birthday-twins/birthdays"
	"birthday-twins/cmd/api/dto"
	"birthday-twins/models"
)

type BirthdayFetcher interface {
	Fetch(ctx context.Context, date models.DateKey, opts birthdays.FetchOptions) (*birthdays.Result, error)
}

// BirthdayService 는 날짜 문자열을 해석하고 조회 결과를 응답 DTO 로 옮긴다.
type BirthdayService struct {
	fetcher BirthdayFetcher
	avatars *avatar.Builder
	now     func() time.Time
}

func NewBirthdayService(fetcher BirthdayFetcher, avatars *avatar.Builder) *BirthdayService {
	return &BirthdayService{fetcher: fetcher, avatars: avatars, now: time.Now}
}

type GetBirthdaysInput struct {
	// Date 가 비어 있으면 오늘 날짜를 쓴다.
	Date     string
	Refresh  bool
	NoImages bool
}

func (s *BirthdayService) Get(ctx context.Context, in GetBirthdaysInput) (dto.BirthdaysResponseDTO, *APIError) {
	date, err := s.parseDate(in.Date)
	if err != nil {
		return dto.BirthdaysResponseDTO{}, toAPIError(err)
	}

	res, err := s.fetcher.Fetch(ctx, date, birthdays.FetchOptions{BypassCache: in.Refresh, SkipImages: in.NoImages})
	if err != nil {
		return dto.BirthdaysResponseDTO{}, toAPIError(err)
	}

	return dto.BirthdaysResponseDTO{
		Date:        res.Date.String(),
		DisplayDate: res.Date.Display(),
		Celebrities: mapCelebrities(res.Celebrities, s.avatars, avatar.VariantList),
		Images:      mapReports(res.Reports),
		Cached:      res.Cached,
		FetchedAt:   res.FetchedAt,
	}, nil
}

func (s *BirthdayService) parseDate(raw string) (models.DateKey, error) {
	if strings.TrimSpace(raw) == "" {
		return models.DateKeyFromTime(s.now()), nil
	}
	return models.ParseDateKey(raw)
}

// Styles 는 선택 가능한 테마와 폰트 목록이다.
func (s *BirthdayService) Styles() dto.StylesResponseDTO {
	out := dto.StylesResponseDTO{
		DefaultTheme: string(models.DefaultStyle().Theme),
		DefaultFont:  string(models.DefaultStyle().Font),
	}
	for _, t := range models.Themes {
		spec := t.Spec()
		out.Themes = append(out.Themes, dto.ThemeDTO{
			ID:            string(t),
			Label:         spec.Label,
			GradientStops: spec.GradientStops,
			TextColor:     spec.TextColor,
			AccentColor:   spec.AccentColor,
			NameColor:     spec.NameColor,
		})
	}
	for _, f := range models.Fonts {
		spec := f.Spec()
		out.Fonts = append(out.Fonts, dto.FontDTO{ID: string(f), Label: spec.Label, Family: spec.Family})
	}
	return out
}
