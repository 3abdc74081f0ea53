package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "json.log")
	cfg := defaultLogConfig()
	cfg.Format = "json"
	cfg.Filename = path
	cfg.Debug = true

	log, err := newLogger(cfg)
	require.NoError(t, err)
	log.Debug("probe")
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"probe"`)
	assert.Contains(t, string(data), `"level":"debug"`)
}

func TestNewLogger_Errors(t *testing.T) {
	cfg := defaultLogConfig()
	cfg.Format = "xml"
	_, err := newLogger(cfg)
	assert.ErrorIs(t, err, errLogFormat)

	cfg = defaultLogConfig()
	cfg.Level = "loud"
	_, err = newLogger(cfg)
	assert.Error(t, err)
}
