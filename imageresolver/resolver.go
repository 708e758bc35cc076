package imageresolver

import (
	"context"
	"errors"
	"time"

	"birthday-twins/internal/logger"
)

// StageStatus 는 체인의 한 단계가 어떻게 끝났는지를 나타낸다.
type StageStatus string

const (
	StageFound    StageStatus = "found"
	StageNotFound StageStatus = "not_found"
	StageFailed   StageStatus = "failed"
	StageSkipped  StageStatus = "skipped"
)

type StageOutcome struct {
	Provider string        `json:"provider"`
	Status   StageStatus   `json:"status"`
	Error    string        `json:"error,omitempty"`
	Duration time.Duration `json:"duration_ns"`
}

// Report 는 한 인물에 대한 해석 결과다. URL 이 비어 있으면 실제 사진이 없다는 뜻이다.
// 단계별 오류는 Stages 에만 기록되고 호출자에게 error 로 전달되지 않는다.
type Report struct {
	Name   string         `json:"name"`
	URL    string         `json:"url,omitempty"`
	Source string         `json:"source,omitempty"`
	Stages []StageOutcome `json:"stages"`
}

func (r Report) Found() bool {
	return r.URL != ""
}

// Resolver 는 Provider 들을 순서대로 시도하고, 처음 찾은 URL 에서 멈춘다.
type Resolver struct {
	providers []Provider
}

func NewResolver(providers ...Provider) *Resolver {
	return &Resolver{providers: providers}
}

// ResolveImage 는 URL 과 찾았는지 여부만 돌려준다. 실패는 절대 error 로 올라오지 않는다.
func (r *Resolver) ResolveImage(ctx context.Context, personName string) (string, bool) {
	report := r.Resolve(ctx, personName)
	return report.URL, report.Found()
}

func (r *Resolver) Resolve(ctx context.Context, personName string) Report {
	report := Report{Name: personName, Stages: make([]StageOutcome, 0, len(r.providers))}

	for _, p := range r.providers {
		if report.Found() {
			report.Stages = append(report.Stages, StageOutcome{Provider: p.Name(), Status: StageSkipped})
			continue
		}

		start := time.Now()
		url, err := findSafely(ctx, p, personName)
		outcome := StageOutcome{Provider: p.Name(), Duration: time.Since(start)}
		switch {
		case err != nil:
			outcome.Status = StageFailed
			outcome.Error = err.Error()
		case url == "":
			outcome.Status = StageNotFound
		default:
			outcome.Status = StageFound
			report.URL = url
			report.Source = p.Name()
		}
		report.Stages = append(report.Stages, outcome)
	}

	logger.DebugWithFields("image resolution completed", logger.Fields{
		"name":   personName,
		"found":  report.Found(),
		"source": report.Source,
		"stages": report.Stages,
	})
	return report
}

// findSafely 는 Provider 의 panic 도 실패로 흡수한다.
func findSafely(ctx context.Context, p Provider, personName string) (url string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			url = ""
			err = errors.New("provider panicked")
		}
	}()
	return p.Find(ctx, personName)
}
