package router

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"birthday-twins/avatar"
	"birthday-twins/birthdays"
	"birthday-twins/cache"
	"birthday-twins/cmd/api/dto"
	"birthday-twins/cmd/api/services"
	"birthday-twins/llm"
	"birthday-twins/lookup"
	"birthday-twins/models"
	"birthday-twins/session"
)

type fakeFetcher struct {
	err   error
	calls []birthdays.FetchOptions
}

func (f *fakeFetcher) Fetch(_ context.Context, date models.DateKey, opts birthdays.FetchOptions) (*birthdays.Result, error) {
	f.calls = append(f.calls, opts)
	if f.err != nil {
		return nil, f.err
	}
	list := []models.Celebrity{
		{Name: "A", Description: "first", ImageURL: "https://img.test/a.jpg"},
		{Name: "B", Description: "second"},
		{Name: "C", Description: "third"},
		{Name: "D", Description: "fourth"},
		{Name: "E", Description: "fifth"},
	}
	return &birthdays.Result{Date: date, Celebrities: list}, nil
}

type fakeCapturer struct {
	html string
}

func (f *fakeCapturer) CardPNG(_ context.Context, html string) ([]byte, error) {
	f.html = html
	return []byte("\x89PNG fake"), nil
}

type testServer struct {
	engine   *gin.Engine
	fetcher  *fakeFetcher
	capturer *fakeCapturer
	store    *cache.MemoryStore
}

const testAdminToken = "admin-secret"

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	fetcher := &fakeFetcher{}
	capturer := &fakeCapturer{}
	avatars := avatar.NewBuilder("https://ui-avatars.test/api/")
	posts := services.NewPostService(avatars, capturer, "https://twins.test/")

	store := cache.NewMemoryStore(0)
	engine := New(Deps{
		Cache:     store,
		Birthdays: services.NewBirthdayService(fetcher, avatars),
		Posts:     posts,
		Sessions:  services.NewSessionService(session.NewStore(fetcher, 0), posts, avatars, "https://twins.test/"),

		AdminToken: testAdminToken,
	})
	return &testServer{engine: engine, fetcher: fetcher, capturer: capturer, store: store}
}

func (s *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	w := s.do(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode[dto.HealthResponseDTO](t, w).Status)
}

func TestListBirthdays(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/v1/birthdays?date=2024-07-04&refresh=true", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[dto.BirthdaysResponseDTO](t, w)
	assert.Equal(t, "07-04", resp.Date)
	assert.Equal(t, "July 4", resp.DisplayDate)
	require.Len(t, resp.Celebrities, 5)
	assert.Equal(t, "https://img.test/a.jpg", resp.Celebrities[0].ImageURL)
	assert.Empty(t, resp.Celebrities[1].ImageURL)
	assert.Contains(t, resp.Celebrities[1].Placeholder, "background=random")

	require.Len(t, s.fetcher.calls, 1)
	assert.True(t, s.fetcher.calls[0].BypassCache)
}

func TestListBirthdays_Errors(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/v1/birthdays?date=13-40", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_date", decode[dto.ErrorResponseDTO](t, w).Error)

	s.fetcher.err = fmt.Errorf("%w: %w", lookup.ErrLookupFailed, errors.New("upstream 500"))
	w = s.do(t, http.MethodGet, "/api/v1/birthdays?date=07-04", nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, dto.ErrorResponseDTO{Error: "lookup_failed", Message: "lookup failed"}, decode[dto.ErrorResponseDTO](t, w))

	s.fetcher.err = fmt.Errorf("%w: %w", lookup.ErrLookupFailed, llm.ErrQuotaExhausted)
	w = s.do(t, http.MethodGet, "/api/v1/birthdays?date=07-04", nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, dto.ErrorResponseDTO{Error: "lookup_failed", Message: "lookup failed"}, decode[dto.ErrorResponseDTO](t, w))
}

func TestCreatePost_EmptyNameCheckedFirst(t *testing.T) {
	s := newTestServer(t)

	badDate := createPostBody("", nil)
	badDate.Date = "13-45"
	badPhoto := createPostBody(" ", nil)
	badPhoto.Friend.Photo = "data:image/png;base64,!!"
	noDate := createPostBody("", nil)
	noDate.Date = ""
	badStyle := createPostBody("", nil)
	badStyle.Theme = "neon"

	for _, path := range []string{"/api/v1/posts", "/api/v1/posts/card", "/api/v1/posts/card.png"} {
		for _, body := range []dto.CreatePostRequestDTO{badDate, badPhoto, noDate, badStyle} {
			w := s.do(t, http.MethodPost, path, body)
			assert.Equal(t, http.StatusUnprocessableEntity, w.Code, path)
			assert.Equal(t, "empty_friend_name", decode[dto.ErrorResponseDTO](t, w).Error, path)
		}
	}

	named := createPostBody("Sam", nil)
	named.Date = ""
	w := s.do(t, http.MethodPost, "/api/v1/posts", named)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_date", decode[dto.ErrorResponseDTO](t, w).Error)
}

func TestSession_GenerateEmptyNameBeforeLoad(t *testing.T) {
	s := newTestServer(t)

	sess := decode[dto.SessionDTO](t, s.do(t, http.MethodPost, "/api/v1/sessions", nil))
	w := s.do(t, http.MethodPost, "/api/v1/sessions/"+sess.ID+"/post", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "empty_friend_name", decode[dto.ErrorResponseDTO](t, w).Error)
}

func createPostBody(name string, selection []string) dto.CreatePostRequestDTO {
	return dto.CreatePostRequestDTO{
		Friend: dto.FriendDTO{Name: name},
		Date:   "07-04",
		Celebrities: []dto.CelebrityInputDTO{
			{Name: "A", Description: "first"},
			{Name: "B", Description: "second"},
			{Name: "C", Description: "third"},
		},
		Selection: selection,
		Theme:     "galaxy",
	}
}

func TestCreatePost(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/v1/posts", createPostBody("Mary Jane", []string{"C", "A"}))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	p := decode[dto.PostDTO](t, w)
	require.Len(t, p.Celebrities, 2)
	assert.Equal(t, "C", p.Celebrities[0].Name)
	assert.Equal(t, "A", p.Celebrities[1].Name)
	assert.Equal(t, "galaxy", p.Theme)
	assert.Equal(t, "poppins", p.Font)
	assert.Equal(t, "Birthday Twins for July 4", p.DateLine)
	assert.Equal(t, "birthday-post-for-mary-jane.png", p.Share.DownloadFilename)
}

func TestCreatePost_Validation(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/v1/posts", createPostBody("   ", nil))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "empty_friend_name", decode[dto.ErrorResponseDTO](t, w).Error)

	body := createPostBody("Sam", nil)
	body.Celebrities = nil
	w = s.do(t, http.MethodPost, "/api/v1/posts", body)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "no_celebrities_available", decode[dto.ErrorResponseDTO](t, w).Error)

	body = createPostBody("Sam", nil)
	body.Font = "comic-sans"
	w = s.do(t, http.MethodPost, "/api/v1/posts", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_style", decode[dto.ErrorResponseDTO](t, w).Error)
}

func TestCreatePostPNG(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/v1/posts/card.png", createPostBody("Sam", nil))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="birthday-post-for-sam.png"`, w.Header().Get("Content-Disposition"))

	// PNG 용 HTML 은 외부 아바타 서비스 대신 인라인 이미지를 쓴다.
	assert.NotContains(t, s.capturer.html, "ui-avatars.test")
	assert.Contains(t, s.capturer.html, "data:image/png;base64,")
}

func TestSessionFlow(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/v1/sessions", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	sess := decode[dto.SessionDTO](t, w)
	assert.Equal(t, "idle", sess.Status)
	base := "/api/v1/sessions/" + sess.ID

	w = s.do(t, http.MethodPost, base+"/post", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "not_loaded", decode[dto.ErrorResponseDTO](t, w).Error)

	w = s.do(t, http.MethodPut, base+"/date", dto.SetDateRequestDTO{Date: "2024-02-29"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	sess = decode[dto.SessionDTO](t, w)
	assert.Equal(t, "loaded", sess.Status)
	assert.Equal(t, "02-29", sess.Date)
	assert.False(t, sess.CanGenerate)

	for _, name := range []string{"D", "B"} {
		w = s.do(t, http.MethodPost, base+"/selection", dto.ToggleSelectionRequestDTO{Name: name})
		require.Equal(t, http.StatusOK, w.Code)
	}
	assert.Equal(t, []string{"D", "B"}, decode[dto.SessionDTO](t, w).Selection)

	w = s.do(t, http.MethodPost, base+"/post", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = s.do(t, http.MethodPut, base+"/friend", dto.FriendDTO{Name: "Sam"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[dto.SessionDTO](t, w).CanGenerate)

	w = s.do(t, http.MethodPut, base+"/style", dto.SetStyleRequestDTO{Theme: "ocean", Font: "anton"})
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodPost, base+"/post", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	sess = decode[dto.SessionDTO](t, w)
	assert.Equal(t, "post_generated", sess.Status)
	require.NotNil(t, sess.Post)
	assert.Equal(t, "D", sess.Post.Celebrities[0].Name)
	assert.Equal(t, "ocean", sess.Post.Theme)

	w = s.do(t, http.MethodGet, base+"/post/card", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/html"))
	assert.Contains(t, w.Body.String(), "Birthday Twins for February 29")

	w = s.do(t, http.MethodPost, base+"/retry", nil)
	require.Equal(t, http.StatusOK, w.Code)
	sess = decode[dto.SessionDTO](t, w)
	assert.Nil(t, sess.Post)
	assert.Empty(t, sess.Selection)

	w = s.do(t, http.MethodGet, base+"/post/card", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSession_FailedLookup(t *testing.T) {
	s := newTestServer(t)
	s.fetcher.err = fmt.Errorf("%w: %w", lookup.ErrLookupFailed, errors.New("boom"))

	sess := decode[dto.SessionDTO](t, s.do(t, http.MethodPost, "/api/v1/sessions", nil))
	w := s.do(t, http.MethodPut, "/api/v1/sessions/"+sess.ID+"/date", dto.SetDateRequestDTO{Date: "07-04"})
	require.Equal(t, http.StatusOK, w.Code)

	out := decode[dto.SessionDTO](t, w)
	assert.Equal(t, "failed", out.Status)
	assert.Equal(t, "lookup failed", out.Error)
	assert.NotContains(t, w.Body.String(), "boom")
	assert.Empty(t, out.Celebrities)
}

func TestSession_NotFound(t *testing.T) {
	s := newTestServer(t)
	w := s.do(t, http.MethodGet, "/api/v1/sessions/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "session_not_found", decode[dto.ErrorResponseDTO](t, w).Error)
}

func TestAvatar(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/v1/avatars?name=Ada+Lovelace&variant=friend", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("\x89PNG")))

	w = s.do(t, http.MethodGet, "/api/v1/avatars?name=Ada&variant=poster", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestShare(t *testing.T) {
	s := newTestServer(t)
	w := s.do(t, http.MethodGet, "/api/v1/share?name=Sam", nil)
	require.Equal(t, http.StatusOK, w.Code)

	links := decode[dto.ShareDTO](t, w)
	assert.Contains(t, links.Twitter, "url=https%3A%2F%2Ftwins.test%2F")
	assert.Equal(t, "birthday-post-for-sam.png", links.DownloadFilename)
}

func TestAdminPurgeCache(t *testing.T) {
	s := newTestServer(t)
	date, err := models.ParseDateKey("07-04")
	require.NoError(t, err)
	require.NoError(t, s.store.Set(context.Background(), date, []models.Celebrity{{Name: "A"}}))

	w := s.do(t, http.MethodDelete, "/api/v1/admin/cache/07-04", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/cache/07-04", nil)
	req.Header.Set("Authorization", "Bearer "+testAdminToken)
	w = httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[dto.PurgeCacheResponseDTO](t, w)
	assert.Equal(t, "07-04", resp.Date)
	assert.True(t, resp.Purged)

	_, ok, err := s.store.Get(context.Background(), date)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAdminRoutesDisabledWithoutToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := New(Deps{Cache: cache.NewMemoryStore(0)})

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/cache/07-04", nil)
	req.Header.Set("Authorization", "Bearer anything")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSwaggerDocServed(t *testing.T) {
	s := newTestServer(t)
	w := s.do(t, http.MethodGet, "/swagger/doc.json", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"/sessions/{id}/post"`)
}
