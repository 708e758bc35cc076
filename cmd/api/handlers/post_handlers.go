package handlers

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"birthday-twins/avatar"
	"birthday-twins/cmd/api/dto"
	"birthday-twins/cmd/api/services"
	"birthday-twins/models"
)

func bindPost(c *gin.Context, svc *services.PostService) (models.Post, bool) {
	var req dto.CreatePostRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request", Message: err.Error()})
		return models.Post{}, false
	}
	p, apiErr := svc.Create(req)
	if apiErr != nil {
		respondError(c, apiErr)
		return models.Post{}, false
	}
	return p, true
}

// CreatePostHandler godoc
// @Summary      Assemble a birthday post
// @Description  세션 없이 목록/선택/친구 정보를 한 번에 받아 카드 문서를 만든다
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreatePostRequestDTO  true  "post request"
// @Success      201   {object}  dto.PostDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      422   {object}  dto.ErrorResponseDTO
// @Router       /posts [post]
func CreatePostHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := bindPost(c, svc)
		if !ok {
			return
		}
		c.JSON(http.StatusCreated, svc.ToDTO(p))
	}
}

// CreatePostCardHandler godoc
// @Summary      Render a birthday card as HTML
// @Tags         posts
// @Accept       json
// @Produce      html
// @Param        body  body  dto.CreatePostRequestDTO  true  "post request"
// @Success      200
// @Failure      422   {object}  dto.ErrorResponseDTO
// @Router       /posts/card [post]
func CreatePostCardHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := bindPost(c, svc)
		if !ok {
			return
		}
		writeCardHTML(c, svc, p)
	}
}

// CreatePostPNGHandler godoc
// @Summary      Export a birthday card as PNG
// @Tags         posts
// @Accept       json
// @Produce      png
// @Param        body  body  dto.CreatePostRequestDTO  true  "post request"
// @Success      200
// @Failure      422   {object}  dto.ErrorResponseDTO
// @Failure      503   {object}  dto.ErrorResponseDTO
// @Router       /posts/card.png [post]
func CreatePostPNGHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := bindPost(c, svc)
		if !ok {
			return
		}
		writeCardPNG(c, svc, p)
	}
}

func writeCardHTML(c *gin.Context, svc *services.PostService, p models.Post) {
	html, apiErr := svc.CardHTML(p)
	if apiErr != nil {
		respondError(c, apiErr)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func writeCardPNG(c *gin.Context, svc *services.PostService, p models.Post) {
	png, filename, apiErr := svc.CardPNG(c.Request.Context(), p)
	if apiErr != nil {
		respondError(c, apiErr)
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+strconv.Quote(filename))
	c.Data(http.StatusOK, "image/png", png)
}

// AvatarHandler godoc
// @Summary      Placeholder avatar
// @Description  이니셜이 들어간 결정적 PNG 아바타
// @Tags         avatars
// @Param        name     query  string  true   "person name"
// @Param        variant  query  string  false  "list | card | friend"
// @Produce      png
// @Success      200
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /avatars [get]
func AvatarHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		variant, err := avatar.ParseVariant(c.Query("variant"))
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_variant", Message: err.Error()})
			return
		}
		var buf bytes.Buffer
		if err := avatar.WritePNG(&buf, c.Query("name"), variant); err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "internal_error"})
			return
		}
		c.Header("Cache-Control", "public, max-age=86400")
		c.Data(http.StatusOK, "image/png", buf.Bytes())
	}
}

// ShareHandler godoc
// @Summary      Share links for a friend's card
// @Tags         posts
// @Param        name  query  string  true   "friend name"
// @Param        url   query  string  false  "page to share (defaults to share.page_url)"
// @Produce      json
// @Success      200  {object}  dto.ShareDTO
// @Router       /share [get]
func ShareHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.Share(c.Query("name"), c.Query("url")))
	}
}
