package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"birthday-twins/cache"
	"birthday-twins/cmd/api/dto"
	"birthday-twins/cmd/api/services"
)

func respondError(c *gin.Context, apiErr *services.APIError) {
	if apiErr.Cause != nil {
		_ = c.Error(apiErr.Cause)
	}
	c.JSON(apiErr.StatusCode, dto.ErrorResponseDTO{Error: apiErr.ErrorCode, Message: apiErr.Message()})
}

func queryBool(c *gin.Context, key string) bool {
	v, _ := strconv.ParseBool(c.Query(key))
	return v
}

// HealthHandler godoc
// @Summary      Health check
// @Description  원격 캐시를 쓰는 경우 연결 상태까지 확인한다
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthResponseDTO
// @Failure      503  {object}  dto.HealthResponseDTO
// @Router       /health [get]
func HealthHandler(store cache.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		pinger, ok := store.(cache.Pinger)
		if !ok {
			c.JSON(http.StatusOK, dto.HealthResponseDTO{Status: "ok"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		if err := pinger.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, dto.HealthResponseDTO{Status: "degraded", Cache: "down", Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, dto.HealthResponseDTO{Status: "ok", Cache: "up"})
	}
}

// ListBirthdaysHandler godoc
// @Summary      Famous birthdays for a date
// @Description  날짜의 유명인 5명과 사진을 조회한다. date 가 없으면 오늘.
// @Tags         birthdays
// @Param        date       query  string  false  "YYYY-MM-DD or MM-DD"
// @Param        refresh    query  bool    false  "캐시를 우회한다"
// @Param        no_images  query  bool    false  "이미지 해석을 건너뛴다"
// @Produce      json
// @Success      200  {object}  dto.BirthdaysResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      502  {object}  dto.ErrorResponseDTO
// @Router       /birthdays [get]
func ListBirthdaysHandler(svc *services.BirthdayService) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp, apiErr := svc.Get(c.Request.Context(), services.GetBirthdaysInput{
			Date:     c.Query("date"),
			Refresh:  queryBool(c, "refresh"),
			NoImages: queryBool(c, "no_images"),
		})
		if apiErr != nil {
			respondError(c, apiErr)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// ListStylesHandler godoc
// @Summary      Card themes and fonts
// @Tags         birthdays
// @Produce      json
// @Success      200  {object}  dto.StylesResponseDTO
// @Router       /styles [get]
func ListStylesHandler(svc *services.BirthdayService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.Styles())
	}
}
