package lookup

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"birthday-twins/internal/logger"
	"birthday-twins/jsonutil"
	"birthday-twins/llm"
	"birthday-twins/models"
)

// ExpectedCount 는 한 번의 조회가 반환해야 하는 인원 수다.
const ExpectedCount = 5

var (
	// ErrLookupFailed 는 호출자에게 노출되는 유일한 실패 신호다. 전송 실패와 응답 형식 오류를 구분하지 않는다.
	ErrLookupFailed = errors.New("lookup failed")
	// ErrMalformedResponse 는 진단용으로만 ErrLookupFailed 와 함께 감싸진다.
	ErrMalformedResponse = errors.New("malformed response")
)

const promptTemplate = `List exactly %d internationally famous people (like actors, musicians, historical figures, scientists, or athletes) whose birthday is on %s.
For each person, provide their common full name (suitable for searching on APIs like Wikipedia) and a brief, one-sentence description of why they are famous.
IMPORTANT: Respond with only a valid JSON object in the format: { "celebrities": [{ "name": "string", "description": "string" }] }.
Do not include any text outside of this JSON object or markdown formatting.`

type response struct {
	Celebrities *[]struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	} `json:"celebrities"`
}

type Service struct {
	gen llm.Generator
}

func New(gen llm.Generator) *Service {
	return &Service{gen: gen}
}

// Prompt 는 주어진 날짜에 대한 조회 프롬프트를 만든다. 연도는 포함되지 않는다.
func Prompt(date models.DateKey) string {
	return fmt.Sprintf(promptTemplate, ExpectedCount, date.Display())
}

// Lookup 은 date 에 태어난 유명인 5명을 반환한다. 재시도, 타임아웃, 캐시는 하지 않는다.
func (s *Service) Lookup(ctx context.Context, date models.DateKey) ([]models.Celebrity, error) {
	result, err := s.gen.Generate(ctx, llm.Request{Prompt: Prompt(date), Search: true})
	if err != nil {
		logger.ErrorWithFields("celebrity lookup request failed", logger.Fields{
			"date":  date.String(),
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %w", ErrLookupFailed, err)
	}

	celebrities, err := Parse(result.Text)
	if err != nil {
		logger.ErrorWithFields("celebrity lookup response rejected", logger.Fields{
			"date":  date.String(),
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %w", ErrLookupFailed, err)
	}

	if dups := models.DuplicateNames(celebrities); len(dups) > 0 {
		logger.WarnWithFields("celebrity lookup returned duplicate names", logger.Fields{
			"date":       date.String(),
			"duplicates": dups,
		})
	}

	return celebrities, nil
}

// Parse 는 코드 펜스를 벗긴 응답 텍스트를 Celebrity 목록으로 변환한다.
// JSON 이 아니거나 celebrities 배열이 없거나, 인원 수/필드가 맞지 않으면 ErrMalformedResponse 를 반환한다.
func Parse(text string) ([]models.Celebrity, error) {
	parsed, err := jsonutil.ParseJSON[response](text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if parsed.Celebrities == nil {
		return nil, fmt.Errorf("%w: missing celebrities array", ErrMalformedResponse)
	}

	entries := *parsed.Celebrities
	if len(entries) != ExpectedCount {
		return nil, fmt.Errorf("%w: expected %d celebrities, got %d", ErrMalformedResponse, ExpectedCount, len(entries))
	}

	out := make([]models.Celebrity, 0, len(entries))
	for i, e := range entries {
		name := strings.TrimSpace(StripMarkup(e.Name))
		description := strings.TrimSpace(StripMarkup(e.Description))
		if name == "" || description == "" {
			return nil, fmt.Errorf("%w: entry %d has empty name or description", ErrMalformedResponse, i)
		}
		out = append(out, models.Celebrity{Name: name, Description: description})
	}
	return out, nil
}
