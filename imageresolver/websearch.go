package imageresolver

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"

	"birthday-twins/llm"
)

const (
	ProviderWebSearch = "web_search"

	// NotFoundSentinel 은 모델이 이미지를 찾지 못했을 때 돌려주도록 지시한 문자열이다.
	NotFoundSentinel = "NOT_FOUND"
)

var imageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".webp": {},
	".gif":  {},
}

const webSearchPrompt = `Using Google Search, find a publicly usable, direct link to a high-quality image of the famous person: %q.
This could be a photograph or a well-known portrait for historical figures. The URL must point directly to an image file (e.g., .jpg, .png, .webp).
Prioritize reliable sources like Wikimedia Commons, Wikipedia, Britannica, or official museum websites.
Respond with ONLY the raw image URL. Do not include any other text, markdown, or explanation.
If a suitable direct image link cannot be found after a thorough search, respond with the exact text "NOT_FOUND".`

// WebSearchProvider 는 생성형 API 에 웹 검색으로 이미지 URL 하나를 찾아 달라고 요청한다.
type WebSearchProvider struct {
	gen llm.Generator
}

func NewWebSearchProvider(gen llm.Generator) *WebSearchProvider {
	return &WebSearchProvider{gen: gen}
}

func (p *WebSearchProvider) Name() string {
	return ProviderWebSearch
}

func (p *WebSearchProvider) Find(ctx context.Context, personName string) (string, error) {
	result, err := p.gen.Generate(ctx, llm.Request{
		Prompt: fmt.Sprintf(webSearchPrompt, personName),
		Search: true,
	})
	if err != nil {
		return "", err
	}
	if u, ok := ValidateImageURL(result.Text); ok {
		return u, nil
	}
	return "", nil
}

// ValidateImageURL 은 모델 응답이 직접 이미지 URL 인지 확인한다.
// 비어 있지 않고, http 로 시작하고, NOT_FOUND 가 아니며, 경로가 래스터 이미지 확장자로 끝나야 한다.
// 쿼리 문자열은 경로 판정에 포함하지 않는다.
func ValidateImageURL(text string) (string, bool) {
	candidate := strings.TrimSpace(text)
	if candidate == "" || candidate == NotFoundSentinel || !strings.HasPrefix(candidate, "http") {
		return "", false
	}
	if strings.ContainsAny(candidate, " \t\n") {
		return "", false
	}

	u, err := url.Parse(candidate)
	if err != nil || u.Host == "" {
		return "", false
	}
	if _, ok := imageExtensions[strings.ToLower(path.Ext(u.Path))]; !ok {
		return "", false
	}
	return candidate, true
}
