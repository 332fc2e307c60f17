package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/dkeller/item-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decodeLogLines parses each newline-delimited JSON record in buf.
func decodeLogLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()

	var records []map[string]interface{}
	dec := json.NewDecoder(buf)
	for dec.More() {
		var record map[string]interface{}
		require.NoError(t, dec.Decode(&record))
		records = append(records, record)
	}
	return records
}

func TestSetupLevels(t *testing.T) {
	tests := []struct {
		name       string
		level      string
		logAtDebug bool
		logAtInfo  bool
	}{
		{name: "debug level", level: "debug", logAtDebug: true, logAtInfo: true},
		{name: "info level", level: "info", logAtDebug: false, logAtInfo: true},
		{name: "warn level", level: "warn", logAtDebug: false, logAtInfo: false},
		{name: "error level", level: "error", logAtDebug: false, logAtInfo: false},
		{name: "case insensitive", level: "DEBUG", logAtDebug: true, logAtInfo: true},
		{name: "invalid level falls back to info", level: "verbose", logAtDebug: false, logAtInfo: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			log, err := setup(config.ServerConfig{LogLevel: tc.level}, &buf)
			require.NoError(t, err)
			require.NotNil(t, log)

			log.Debug("debug message")
			log.Info("info message")

			records := decodeLogLines(t, &buf)
			messages := make([]string, 0, len(records))
			for _, record := range records {
				messages = append(messages, record["msg"].(string))
			}

			if tc.logAtDebug {
				assert.Contains(t, messages, "debug message")
			} else {
				assert.NotContains(t, messages, "debug message")
			}
			if tc.logAtInfo {
				assert.Contains(t, messages, "info message")
			} else {
				assert.NotContains(t, messages, "info message")
			}
		})
	}
}

func TestSetupEmitsJSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := setup(config.ServerConfig{LogLevel: "info"}, &buf)
	require.NoError(t, err)

	log.Info("structured record", slog.String("item_id", "abc"))

	records := decodeLogLines(t, &buf)
	require.Len(t, records, 1)
	assert.Equal(t, "structured record", records[0]["msg"])
	assert.Equal(t, "abc", records[0]["item_id"])
	assert.Equal(t, "INFO", records[0]["level"])
}

func TestSetupSetsDefaultLogger(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	log, err := setup(config.ServerConfig{LogLevel: "info"}, &buf)
	require.NoError(t, err)

	assert.Same(t, log, slog.Default())
}
