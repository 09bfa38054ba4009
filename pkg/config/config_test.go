package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/git-line-totals/pkg/classify"
	"github.com/Sumatoshi-tech/git-line-totals/pkg/config"
	"github.com/Sumatoshi-tech/git-line-totals/pkg/report"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "language", cfg.GroupBy)
	assert.Equal(t, "table", cfg.Format)
	assert.Equal(t, "HEAD", cfg.Rev)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := "groupby: extension\nformat: json\nlogging:\n  level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "extension", cfg.GroupBy)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// Unset values keep their defaults.
	assert.Equal(t, "HEAD", cfg.Rev)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoadMarksExplicitGroupBy(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.False(t, cfg.GroupBySet, "default groupby must not count as set")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("groupby: language\n"), 0o644))

	cfg, err = config.Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.GroupBySet, "groupby from the config file must count as set")
	assert.Equal(t, "language", cfg.GroupBy)
}

func TestLoadMarksGroupByFromEnv(t *testing.T) {
	t.Setenv("GIT_LINE_TOTALS_GROUPBY", "mime-type")

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.True(t, cfg.GroupBySet)
	assert.Equal(t, "mime-type", cfg.GroupBy)
}

func TestLoadRejectsInvalidGroupBy(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	require.NoError(t, os.WriteFile(path, []byte("groupby: nope\n"), 0o644))

	_, err := config.Load(path)
	require.ErrorIs(t, err, classify.ErrUnknownMode)
}

func TestLoadRejectsInvalidFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	require.NoError(t, os.WriteFile(path, []byte("format: xml\n"), 0o644))

	_, err := config.Load(path)
	require.ErrorIs(t, err, report.ErrUnknownFormat)
}

func TestValidate(t *testing.T) {
	cfg := &config.Config{
		GroupBy: config.DefaultGroupBy,
		Format:  config.DefaultFormat,
		Rev:     config.DefaultRev,
		Logging: config.LoggingConfig{Level: "verbose", Format: "text"},
	}

	err := cfg.Validate()
	require.ErrorIs(t, err, config.ErrInvalidLogLevel)

	cfg.Logging.Level = "info"
	cfg.Logging.Format = "xml"

	err = cfg.Validate()
	require.ErrorIs(t, err, config.ErrInvalidLogFormat)

	cfg.Logging.Format = "json"
	require.NoError(t, cfg.Validate())
}
