package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAppliesDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "reports", cfg.ReportsDir)
	assert.Equal(t, "logs", cfg.LogsDir)
	assert.NotEmpty(t, cfg.Vocabulary.Skills)
	assert.NotEmpty(t, cfg.Vocabulary.Technologies)
	assert.NotEmpty(t, cfg.Vocabulary.Languages)
}

func TestLoadReadsYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `port: "8080"
reportsDir: out/reports
vocabulary:
  skills: [go, rust]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "out/reports", cfg.ReportsDir)
	assert.Equal(t, []string{"go", "rust"}, cfg.Vocabulary.Skills)
	// unspecified sections still get defaults
	assert.Equal(t, "logs", cfg.LogsDir)
	assert.NotEmpty(t, cfg.Vocabulary.Technologies)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`port: "8080"`), 0o644))

	t.Setenv("PORT", "9999")
	t.Setenv("AI_SERVICE_URL", "http://localhost:8001")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, "http://localhost:8001", cfg.AIServiceURL)
}

func TestLoadReportsUnreadableFile(t *testing.T) {
	// a directory is readable by stat but fails os.ReadFile with a
	// non-ENOENT error, which must not be silently ignored
	_, err := Load(t.TempDir())
	assert.Error(t, err)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
