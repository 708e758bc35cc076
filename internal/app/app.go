// Package app wires the lookup pipeline shared by the HTTP server and the CLI.
package app

import (
	"context"
	"fmt"

	"birthday-twins/birthdays"
	"birthday-twins/cache"
	"birthday-twins/config"
	"birthday-twins/imageresolver"
	"birthday-twins/llm"
	"birthday-twins/lookup"
)

// imageConcurrency 는 한 배치(5명)를 모두 동시에 해석하도록 둔다.
const imageConcurrency = lookup.ExpectedCount

type Pipeline struct {
	Generator llm.Generator
	Lookup    *lookup.Service
	Resolver  *imageresolver.Resolver
	Cache     cache.Store
	Birthdays *birthdays.Service
}

// NewPipeline 은 Stage A(위키백과) -> Stage B(웹 검색) 순서의 이미지 체인과 조회 서비스를 만든다.
func NewPipeline(ctx context.Context, cfg config.AppConfig) (*Pipeline, error) {
	gen, err := llm.NewGeminiGeneratorFromConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("init llm: %w", err)
	}

	store, err := cache.NewFromConfig(ctx, cfg.Cache)
	if err != nil {
		return nil, fmt.Errorf("init cache: %w", err)
	}

	return NewPipelineWith(gen, imageresolver.NewWikipediaProviderFromConfig(cfg.Wikipedia), store), nil
}

// NewPipelineWith 는 외부 의존성을 직접 주입한다.
func NewPipelineWith(gen llm.Generator, wiki imageresolver.Provider, store cache.Store) *Pipeline {
	resolver := imageresolver.NewResolver(wiki, imageresolver.NewWebSearchProvider(gen))
	look := lookup.New(gen)

	return &Pipeline{
		Generator: gen,
		Lookup:    look,
		Resolver:  resolver,
		Cache:     store,
		Birthdays: birthdays.NewService(look, resolver, store).WithConcurrency(imageConcurrency),
	}
}
