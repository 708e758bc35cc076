package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"birthday-twins/cmd/api/dto"
	"birthday-twins/cmd/api/services"
)

func respondSession(c *gin.Context, status int, out dto.SessionDTO, apiErr *services.APIError) {
	if apiErr != nil {
		respondError(c, apiErr)
		return
	}
	c.JSON(status, out)
}

// CreateSessionHandler godoc
// @Summary      Start a session
// @Description  새 세션은 Idle 상태로 시작한다
// @Tags         sessions
// @Produce      json
// @Success      201  {object}  dto.SessionDTO
// @Router       /sessions [post]
func CreateSessionHandler(svc *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusCreated, svc.Create())
	}
}

// GetSessionHandler godoc
// @Summary      Session snapshot
// @Tags         sessions
// @Param        id   path  string  true  "session id"
// @Produce      json
// @Success      200  {object}  dto.SessionDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /sessions/{id} [get]
func GetSessionHandler(svc *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, apiErr := svc.Get(c.Param("id"))
		respondSession(c, http.StatusOK, out, apiErr)
	}
}

// SetSessionDateHandler godoc
// @Summary      Select a date
// @Description  결과 집합을 비우고 새 날짜로 조회한다. 조회 실패는 status=failed 로 응답한다.
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "session id"
// @Param        body  body  dto.SetDateRequestDTO  true  "date"
// @Success      200   {object}  dto.SessionDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      409   {object}  dto.ErrorResponseDTO  "더 최신 요청에 밀림"
// @Router       /sessions/{id}/date [put]
func SetSessionDateHandler(svc *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.SetDateRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request", Message: err.Error()})
			return
		}
		out, apiErr := svc.SetDate(c.Request.Context(), c.Param("id"), req.Date)
		respondSession(c, http.StatusOK, out, apiErr)
	}
}

// RetrySessionHandler godoc
// @Summary      Retry the lookup for the current date
// @Tags         sessions
// @Param        id   path  string  true  "session id"
// @Produce      json
// @Success      200  {object}  dto.SessionDTO
// @Failure      409  {object}  dto.ErrorResponseDTO
// @Router       /sessions/{id}/retry [post]
func RetrySessionHandler(svc *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, apiErr := svc.Retry(c.Request.Context(), c.Param("id"))
		respondSession(c, http.StatusOK, out, apiErr)
	}
}

// ToggleSelectionHandler godoc
// @Summary      Toggle a celebrity in the selection
// @Description  최대 3명. 가득 찬 상태에서의 추가는 무시된다.
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id    path  string                         true  "session id"
// @Param        body  body  dto.ToggleSelectionRequestDTO  true  "name"
// @Success      200   {object}  dto.SessionDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      409   {object}  dto.ErrorResponseDTO
// @Router       /sessions/{id}/selection [post]
func ToggleSelectionHandler(svc *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.ToggleSelectionRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request", Message: err.Error()})
			return
		}
		out, apiErr := svc.ToggleSelection(c.Param("id"), req.Name)
		respondSession(c, http.StatusOK, out, apiErr)
	}
}

// SetFriendHandler godoc
// @Summary      Set the friend's name and photo
// @Description  JSON(dto.FriendDTO) 또는 multipart(name, photo 파일) 를 받는다
// @Tags         sessions
// @Accept       json,mpfd
// @Produce      json
// @Param        id    path  string         true   "session id"
// @Param        body  body  dto.FriendDTO  false  "friend"
// @Success      200   {object}  dto.SessionDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      413   {object}  dto.ErrorResponseDTO
// @Router       /sessions/{id}/friend [put]
func SetFriendHandler(svc *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.HasPrefix(c.ContentType(), "multipart/") {
			setFriendMultipart(c, svc)
			return
		}

		var req dto.FriendDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request", Message: err.Error()})
			return
		}
		out, apiErr := svc.SetFriend(c.Param("id"), req.Name, req.Photo, nil)
		respondSession(c, http.StatusOK, out, apiErr)
	}
}

func setFriendMultipart(c *gin.Context, svc *services.SessionService) {
	name := c.PostForm("name")

	fh, err := c.FormFile("photo")
	if err != nil {
		out, apiErr := svc.SetFriend(c.Param("id"), name, "", nil)
		respondSession(c, http.StatusOK, out, apiErr)
		return
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_photo", Message: err.Error()})
		return
	}
	defer f.Close()

	out, apiErr := svc.SetFriend(c.Param("id"), name, "", f)
	respondSession(c, http.StatusOK, out, apiErr)
}

// SetStyleHandler godoc
// @Summary      Choose theme and font
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "session id"
// @Param        body  body  dto.SetStyleRequestDTO  true  "style"
// @Success      200   {object}  dto.SessionDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Router       /sessions/{id}/style [put]
func SetStyleHandler(svc *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.SetStyleRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request", Message: err.Error()})
			return
		}
		out, apiErr := svc.SetStyle(c.Param("id"), req.Theme, req.Font)
		respondSession(c, http.StatusOK, out, apiErr)
	}
}

// GenerateSessionPostHandler godoc
// @Summary      Generate the birthday post
// @Description  친구 이름이 비어 있으면 422. 이미 조회한 목록과 선택은 유지된다.
// @Tags         sessions
// @Param        id   path  string  true  "session id"
// @Produce      json
// @Success      200  {object}  dto.SessionDTO
// @Failure      409  {object}  dto.ErrorResponseDTO
// @Failure      422  {object}  dto.ErrorResponseDTO
// @Router       /sessions/{id}/post [post]
func GenerateSessionPostHandler(svc *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, apiErr := svc.Generate(c.Param("id"))
		respondSession(c, http.StatusOK, out, apiErr)
	}
}

// SessionCardHandler godoc
// @Summary      Card HTML of the generated post
// @Tags         sessions
// @Param        id   path  string  true  "session id"
// @Produce      html
// @Success      200
// @Failure      409  {object}  dto.ErrorResponseDTO
// @Router       /sessions/{id}/post/card [get]
func SessionCardHandler(sessions *services.SessionService, posts *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, apiErr := sessions.Post(c.Param("id"))
		if apiErr != nil {
			respondError(c, apiErr)
			return
		}
		writeCardHTML(c, posts, p)
	}
}

// SessionCardPNGHandler godoc
// @Summary      Card PNG of the generated post
// @Tags         sessions
// @Param        id   path  string  true  "session id"
// @Produce      png
// @Success      200
// @Failure      409  {object}  dto.ErrorResponseDTO
// @Failure      503  {object}  dto.ErrorResponseDTO
// @Router       /sessions/{id}/post/card.png [get]
func SessionCardPNGHandler(sessions *services.SessionService, posts *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, apiErr := sessions.Post(c.Param("id"))
		if apiErr != nil {
			respondError(c, apiErr)
			return
		}
		writeCardPNG(c, posts, p)
	}
}
