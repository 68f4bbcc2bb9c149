package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesKeyValueFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf)

	log.Info("Dataset loaded", "city", "chicago", "rows", 3)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "Dataset loaded", entry["message"])
	assert.Equal(t, "chicago", entry["city"])
	assert.Equal(t, float64(3), entry["rows"])
}

func TestErrorFieldUsesErr(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf)

	log.Error("Load failed", "error", errors.New("boom"))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "boom", entry["error"])
}

func TestMapFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf)

	log.Warn("Skipped row", map[string]interface{}{"row": 7})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, float64(7), entry["row"])
}

func TestNewWithNilWriterDiscards(t *testing.T) {
	log := New(nil)
	require.NotNil(t, log)
	log.Info("nothing happens")
}

func TestParseLogLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"WARN":    zerolog.WarnLevel,
		" error ": zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"bogus":   zerolog.InfoLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLogLevel(in), "level %q", in)
	}
}

func TestNewFromConfigRespectsLevel(t *testing.T) {
	cfg := DefaultLoggerConfig()
	cfg.File = true
	cfg.FilePath = t.TempDir() + "/test.log"
	cfg.Level = zerolog.WarnLevel

	log := NewFromConfig(cfg)
	require.NotNil(t, log)
	log.Info("filtered out")
	log.Warn("kept")
}
