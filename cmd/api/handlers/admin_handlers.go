package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"birthday-twins/cmd/api/services"
)

// PurgeCacheHandler godoc
// @Summary      Purge a cached date
// @Description  캐시된 날짜 결과를 지운다. 다음 조회는 새로 생성된다.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        date  path      string  true  "YYYY-MM-DD or MM-DD"
// @Success      200   {object}  dto.PurgeCacheResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      401   {object}  dto.ErrorResponseDTO
// @Failure      403   {object}  dto.ErrorResponseDTO
// @Router       /admin/cache/{date} [delete]
func PurgeCacheHandler(svc *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, apiErr := svc.PurgeDate(c.Request.Context(), c.Param("date"))
		if apiErr != nil {
			respondError(c, apiErr)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}
