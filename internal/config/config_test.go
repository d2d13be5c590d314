package config

import (
	"testing"

	"datareport/internal"
	"datareport/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"LOG_LEVEL", "REPORT_CONFIDENCE", "REPORT_WORKERS", "REPORT_DATA_FILE", "REPORT_SHEET", "REPORT_HAS_HEADERS"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, internal.LogLevelInfo, cfg.Log.Level)
	assert.Equal(t, 0.95, cfg.Report.Confidence)
	assert.Equal(t, 4, cfg.Report.Workers)
	assert.True(t, cfg.Data.HasHeaders)
	assert.Empty(t, cfg.Data.Sheet)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("REPORT_CONFIDENCE", "0.9")
	t.Setenv("REPORT_WORKERS", "2")
	t.Setenv("REPORT_SHEET", "Survey")
	t.Setenv("REPORT_HAS_HEADERS", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, internal.LogLevelDebug, cfg.Log.Level)
	assert.Equal(t, 0.9, cfg.Report.Confidence)
	assert.Equal(t, 2, cfg.Report.Workers)
	assert.Equal(t, "Survey", cfg.Data.Sheet)
	assert.False(t, cfg.Data.HasHeaders)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("REPORT_WORKERS", "")
	t.Setenv("REPORT_CONFIDENCE", "1.5")

	_, err := Load()
	require.Error(t, err)
	assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))

	t.Setenv("REPORT_CONFIDENCE", "")
	t.Setenv("LOG_LEVEL", "chatty")
	_, err = Load()
	require.Error(t, err)
	assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
}
