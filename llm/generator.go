package llm

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"birthday-twins/config"
	"birthday-twins/internal/logger"

	"google.golang.org/genai"
)

var (
	ErrMissingAPIKey       = errors.New("GEMINI_API_KEY environment variable is not set")
	ErrUnsupportedProvider = errors.New("unsupported LLM provider")
	ErrEmptyResponse       = errors.New("empty response from LLM")
)

// Request 는 한 번의 텍스트 생성 요청이다.
// Search 가 true 이면 Google Search 도구를 붙여 웹 검색 결과에 근거한 답을 받는다.
type Request struct {
	Prompt            string
	SystemInstruction string
	Search            bool
}

type Result struct {
	Text string
	Log  *RequestLog
}

type RequestLog struct {
	Prompt       string     `json:"prompt"`
	Response     string     `json:"response"`
	LatencyMs    int64      `json:"latency_ms"`
	TokenUsage   TokenUsage `json:"token_usage"`
	ModelName    string     `json:"model_name"`
	ModelVersion string     `json:"model_version"`
	GeneratedAt  time.Time  `json:"generated_at"`
}

type TokenUsage struct {
	InputTokens  int64 `json:"input_tokens"`
	OutputTokens int64 `json:"output_tokens"`
	TotalTokens  int64 `json:"total_tokens"`
}

// Generator 는 생성형 텍스트 API 에 대한 최소 인터페이스다.
type Generator interface {
	Generate(ctx context.Context, req Request) (*Result, error)
}

// GeminiGenerator 는 google.golang.org/genai 기반 Generator 구현이다.
type GeminiGenerator struct {
	client    *genai.Client
	modelName string
	limiter   *QuotaLimiter
}

// NewGeminiGeneratorFromConfig 는 config.yaml 의 llm 설정과 GEMINI_API_KEY 로 Generator 를 만든다.
func NewGeminiGeneratorFromConfig(ctx context.Context, cfg config.AppConfig) (*GeminiGenerator, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	llmCfg := cfg.LLM
	if llmCfg.Provider != "google" {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedProvider, llmCfg.Provider)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}

	return &GeminiGenerator{
		client:    client,
		modelName: llmCfg.ModelName,
		limiter:   NewQuotaLimiter(llmCfg.Quota),
	}, nil
}

func (g *GeminiGenerator) Generate(ctx context.Context, req Request) (*Result, error) {
	ok, err := g.limiter.WaitAndReserve(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrQuotaExhausted
	}

	startTime := time.Now()

	genCfg := &genai.GenerateContentConfig{}
	if req.SystemInstruction != "" {
		genCfg.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: req.SystemInstruction}}}
	}
	// 검색 도구와 ResponseMIMEType(JSON 모드)은 함께 쓸 수 없으므로 JSON 형식은 프롬프트로만 강제한다.
	if req.Search {
		genCfg.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	}

	result, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(req.Prompt), genCfg)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, ErrEmptyResponse
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return nil, ErrEmptyResponse
	}

	reqLog := &RequestLog{
		Prompt:       req.Prompt,
		Response:     text,
		LatencyMs:    time.Since(startTime).Milliseconds(),
		ModelName:    g.modelName,
		ModelVersion: result.ModelVersion,
		GeneratedAt:  time.Now(),
	}
	if result.UsageMetadata != nil {
		reqLog.TokenUsage = TokenUsage{
			InputTokens:  int64(result.UsageMetadata.PromptTokenCount),
			OutputTokens: int64(result.UsageMetadata.CandidatesTokenCount),
			TotalTokens:  int64(result.UsageMetadata.TotalTokenCount),
		}
	}

	logger.DebugWithFields("llm request completed", logger.Fields{
		"model":         g.modelName,
		"search":        req.Search,
		"latency_ms":    reqLog.LatencyMs,
		"total_tokens":  reqLog.TokenUsage.TotalTokens,
		"response_size": len(text),
	})

	return &Result{Text: text, Log: reqLog}, nil
}
