package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"birthday-twins/cache"
	"birthday-twins/cmd/api/handlers"
	"birthday-twins/cmd/api/middleware"
	"birthday-twins/cmd/api/services"
	_ "birthday-twins/docs"
)

type Deps struct {
	Cache     cache.Store
	Birthdays *services.BirthdayService
	Posts     *services.PostService
	Sessions  *services.SessionService

	// AdminToken 이 비어 있으면 /admin 라우트를 등록하지 않는다.
	AdminToken string
}

func New(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestTrace())

	r.GET("/health", handlers.HealthHandler(deps.Cache))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// v1 routes
	api := r.Group("/api/v1")
	{
		api.GET("/birthdays", handlers.ListBirthdaysHandler(deps.Birthdays))
		api.GET("/styles", handlers.ListStylesHandler(deps.Birthdays))

		api.POST("/posts", handlers.CreatePostHandler(deps.Posts))
		api.POST("/posts/card", handlers.CreatePostCardHandler(deps.Posts))
		api.POST("/posts/card.png", handlers.CreatePostPNGHandler(deps.Posts))
		api.GET("/avatars", handlers.AvatarHandler())
		api.GET("/share", handlers.ShareHandler(deps.Posts))

		api.POST("/sessions", handlers.CreateSessionHandler(deps.Sessions))
		api.GET("/sessions/:id", handlers.GetSessionHandler(deps.Sessions))
		api.PUT("/sessions/:id/date", handlers.SetSessionDateHandler(deps.Sessions))
		api.POST("/sessions/:id/retry", handlers.RetrySessionHandler(deps.Sessions))
		api.POST("/sessions/:id/selection", handlers.ToggleSelectionHandler(deps.Sessions))
		api.PUT("/sessions/:id/friend", handlers.SetFriendHandler(deps.Sessions))
		api.PUT("/sessions/:id/style", handlers.SetStyleHandler(deps.Sessions))
		api.POST("/sessions/:id/post", handlers.GenerateSessionPostHandler(deps.Sessions))
		api.GET("/sessions/:id/post/card", handlers.SessionCardHandler(deps.Sessions, deps.Posts))
		api.GET("/sessions/:id/post/card.png", handlers.SessionCardPNGHandler(deps.Sessions, deps.Posts))
	}

	if deps.AdminToken != "" {
		admin := api.Group("/admin", middleware.AdminAuthMiddleware(deps.AdminToken))
		admin.DELETE("/cache/:date", handlers.PurgeCacheHandler(services.NewAdminService(deps.Cache)))
	}

	return r
}

// WithCORS 는 브라우저 프런트엔드가 다른 오리진에서 API 를 부를 수 있게 한다.
func WithCORS(h http.Handler, origins []string) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id", "X-Span-Id", "Content-Disposition"},
	}).Handler(h)
}
