package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitAppReadsYAMLOverDefaults(t *testing.T) {
	dir := t.TempDir()
	yamlText := `
llm:
  model_name: gemini-test
wikipedia:
  timeout: 3s
cache:
  backend: none
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, CONFIG_FILE), []byte(yamlText), 0o644))
	t.Chdir(dir)

	InitApp()
	t.Cleanup(func() { config = nil })

	cfg := GetConfig()
	assert.Equal(t, "gemini-test", cfg.LLM.ModelName)
	assert.Equal(t, "google", cfg.LLM.Provider)
	assert.Equal(t, 3*time.Second, cfg.Wikipedia.Timeout)
	assert.Equal(t, 200, cfg.Wikipedia.ThumbnailSize)
	assert.Equal(t, "none", cfg.Cache.Backend)
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestGetBasePathWalksUp(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, CONFIG_FILE), []byte("{}"), 0o644))
	nested := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	t.Chdir(nested)

	got, err := filepath.EvalSymlinks(GetBasePath())
	require.NoError(t, err)
	want, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestAdminTokenPrefersEnv(t *testing.T) {
	cfg := Default()
	cfg.Admin.Token = "from-file"

	t.Setenv(ADMIN_TOKEN_ENV, "")
	assert.Equal(t, "from-file", cfg.AdminToken())

	t.Setenv(ADMIN_TOKEN_ENV, "from-env")
	assert.Equal(t, "from-env", cfg.AdminToken())
}
