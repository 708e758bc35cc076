package imageresolver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"birthday-twins/config"
	"birthday-twins/internal/httpclient"
)

const (
	ProviderWikipedia = "wikipedia"

	defaultThumbnailSize = 200
	missingPageID        = "-1"
	maxWikipediaBody     = 1 << 20
)

type wikipediaResponse struct {
	Query struct {
		Pages map[string]wikipediaPage `json:"pages"`
	} `json:"query"`
}

type wikipediaPage struct {
	Title     string `json:"title"`
	Thumbnail *struct {
		Source string `json:"source"`
	} `json:"thumbnail"`
}

// WikipediaProvider 는 MediaWiki pageimages API 로 제목이 정확히 일치하는 문서의 썸네일을 찾는다.
type WikipediaProvider struct {
	base          *httpclient.BaseClient
	thumbnailSize int
}

func NewWikipediaProvider(httpClient *http.Client, baseURL string, thumbnailSize int) *WikipediaProvider {
	if thumbnailSize <= 0 {
		thumbnailSize = defaultThumbnailSize
	}
	return &WikipediaProvider{
		base:          httpclient.NewBaseClientWithClient(httpClient, baseURL),
		thumbnailSize: thumbnailSize,
	}
}

func NewWikipediaProviderFromConfig(cfg config.WikipediaConfig) *WikipediaProvider {
	httpClient := httpclient.New(httpclient.Config{Timeout: cfg.Timeout})
	return NewWikipediaProvider(httpClient, cfg.BaseURL, cfg.ThumbnailSize)
}

func (p *WikipediaProvider) Name() string {
	return ProviderWikipedia
}

func (p *WikipediaProvider) Find(ctx context.Context, personName string) (string, error) {
	query := url.Values{
		"action":      {"query"},
		"titles":      {personName},
		"prop":        {"pageimages"},
		"format":      {"json"},
		"pithumbsize": {strconv.Itoa(p.thumbnailSize)},
		"origin":      {"*"},
	}
	req, err := p.base.NewRequest(ctx, http.MethodGet, "", query, nil)
	if err != nil {
		return "", err
	}

	resp, err := p.base.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxWikipediaBody))
	if err != nil {
		return "", fmt.Errorf("wikipedia response read failed: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("wikipedia request failed: status=%d", resp.StatusCode)
	}

	var out wikipediaResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("wikipedia response decode failed: %w", err)
	}

	// 제목 하나로 질의하므로 pages 에는 항목이 하나뿐이다. "-1" 은 일치하는 문서가 없다는 뜻이다.
	for pageID, page := range out.Query.Pages {
		if pageID == missingPageID {
			continue
		}
		if page.Thumbnail != nil && page.Thumbnail.Source != "" {
			return page.Thumbnail.Source, nil
		}
	}
	return "", nil
}
