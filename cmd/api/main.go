package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"birthday-twins/avatar"
	"birthday-twins/cmd/api/router"
	"birthday-twins/cmd/api/services"
	"birthday-twins/config"
	"birthday-twins/internal/app"
	"birthday-twins/internal/logger"
	"birthday-twins/renderer"
	"birthday-twins/session"
)

// @title           Birthday Twins API
// @version         1.0
// @description     Famous people who share a friend's birthday, turned into a shareable card
// @BasePath        /api/v1

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)
	gin.SetMode(gin.ReleaseMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pipeline, err := app.NewPipeline(ctx, cfg)
	if err != nil {
		logger.ErrorWithFields("failed to init pipeline", logger.Fields{"error": err.Error()})
		os.Exit(1)
	}

	avatars := avatar.NewBuilder(cfg.Avatar.BaseURL)
	sessions := session.NewStore(pipeline.Birthdays, cfg.Session.TTL)
	go sessions.RunJanitor(ctx, time.Minute)

	posts := services.NewPostService(avatars, renderer.NewScreenshotter(cfg.Renderer), cfg.Share.PageURL)
	engine := router.New(router.Deps{
		Cache:     pipeline.Cache,
		Birthdays: services.NewBirthdayService(pipeline.Birthdays, avatars),
		Posts:     posts,
		Sessions:  services.NewSessionService(sessions, posts, avatars, cfg.Share.PageURL),

		AdminToken: cfg.AdminToken(),
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router.WithCORS(engine, cfg.Server.CORSOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.InfoWithFields("api server listening", logger.Fields{"addr": cfg.Server.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorWithFields("server error", logger.Fields{"error": err.Error()})
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorWithFields("graceful shutdown failed", logger.Fields{"error": err.Error()})
	}
}
