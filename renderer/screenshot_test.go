package renderer

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"birthday-twins/config"
)

// 크롬이 있는 환경(CHROME_PATH)에서만 돈다.
func TestScreenshotter_CardPNG(t *testing.T) {
	chromePath := os.Getenv("CHROME_PATH")
	if chromePath == "" {
		t.Skip("CHROME_PATH not set")
	}

	p := samplePost()
	p.Celebrities = p.Celebrities[:1]
	p.Celebrities[0].ImageURL = ""
	html, err := CardHTML(p, fakePlaceholder)
	require.NoError(t, err)

	s := NewScreenshotter(config.RendererConfig{ChromePath: chromePath, Timeout: 20 * time.Second})
	out, err := s.CardPNG(context.Background(), html)
	require.NoError(t, err)

	cfg, err := png.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Positive(t, cfg.Width)
	assert.Positive(t, cfg.Height)
}

func TestNewScreenshotter_Defaults(t *testing.T) {
	t.Setenv("CHROME_PATH", "/opt/chrome")

	s := NewScreenshotter(config.RendererConfig{})
	assert.Equal(t, "/opt/chrome", s.chromePath)
	assert.Equal(t, 30*time.Second, s.timeout)

	s = NewScreenshotter(config.RendererConfig{ChromePath: "/usr/bin/chromium", Timeout: time.Second})
	assert.Equal(t, "/usr/bin/chromium", s.chromePath)
	assert.Equal(t, time.Second, s.timeout)
}
