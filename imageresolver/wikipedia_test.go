package imageresolver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWikipediaServer(t *testing.T, status int, body string) (*httptest.Server, *http.Request) {
	t.Helper()
	var captured http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = *r
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &captured
}

func TestWikipediaProviderFindsThumbnail(t *testing.T) {
	body := `{"batchcomplete":"","query":{"pages":{"20408":{"pageid":20408,"ns":0,"title":"Marie Curie","thumbnail":{"source":"https://upload.wikimedia.org/marie.jpg","width":160,"height":200}}}}}`
	srv, captured := newWikipediaServer(t, http.StatusOK, body)

	p := NewWikipediaProvider(nil, srv.URL+"/w/api.php", 0)
	got, err := p.Find(context.Background(), "Marie Curie")
	require.NoError(t, err)
	assert.Equal(t, "https://upload.wikimedia.org/marie.jpg", got)

	q := captured.URL.Query()
	assert.Equal(t, "/w/api.php", captured.URL.Path)
	assert.Equal(t, "Marie Curie", q.Get("titles"))
	assert.Equal(t, "pageimages", q.Get("prop"))
	assert.Equal(t, "200", q.Get("pithumbsize"))
	assert.Equal(t, "*", q.Get("origin"))
}

func TestWikipediaProviderAbsentCases(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing page", body: `{"query":{"pages":{"-1":{"ns":0,"title":"Nobody Atall","missing":""}}}}`},
		{name: "no thumbnail", body: `{"query":{"pages":{"42":{"pageid":42,"title":"Someone"}}}}`},
		{name: "empty pages", body: `{"query":{"pages":{}}}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv, _ := newWikipediaServer(t, http.StatusOK, tc.body)
			got, err := NewWikipediaProvider(nil, srv.URL, 200).Find(context.Background(), "x")
			require.NoError(t, err)
			assert.Empty(t, got)
		})
	}
}

func TestWikipediaProviderErrors(t *testing.T) {
	srv, _ := newWikipediaServer(t, http.StatusInternalServerError, `oops`)
	_, err := NewWikipediaProvider(nil, srv.URL, 200).Find(context.Background(), "x")
	assert.Error(t, err)

	srv, _ = newWikipediaServer(t, http.StatusOK, `<html>`)
	_, err = NewWikipediaProvider(nil, srv.URL, 200).Find(context.Background(), "x")
	assert.Error(t, err)
}
