package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogrusAdapter(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		format      string
		expectLevel logrus.Level
	}{
		{name: "debug level with text format", level: "debug", format: "text", expectLevel: logrus.DebugLevel},
		{name: "info level with json format", level: "info", format: "json", expectLevel: logrus.InfoLevel},
		{name: "invalid level falls back to info", level: "bogus", format: "text", expectLevel: logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter, ok := NewLogrusAdapter(tt.level, tt.format).(*LogrusAdapter)
			require.True(t, ok)
			assert.Equal(t, tt.expectLevel, adapter.logger.GetLevel())
		})
	}
}

func TestLogrusAdapterFields(t *testing.T) {
	logger := logrus.New()
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.JSONFormatter{})

	adapter := NewLogrusAdapterFromLogger(logger)
	adapter.WithField("contents", "Osmow's").
		WithError(errors.New("boom")).
		Error("append failed", Field{Key: "key", Value: "OSMOW'S"})

	out := buf.String()
	assert.Contains(t, out, `"contents":"Osmow's"`)
	assert.Contains(t, out, `"key":"OSMOW'S"`)
	assert.Contains(t, out, `"error":"boom"`)
}

func TestMockLoggerCapturesEntries(t *testing.T) {
	mock := &MockLogger{}
	mock.Info("loaded patterns", Field{Key: FieldCount, Value: 3})

	require.Len(t, mock.Entries, 1)
	assert.Equal(t, "INFO", mock.Entries[0].Level)
	assert.Equal(t, "loaded patterns", mock.Entries[0].Message)
	assert.Equal(t, FieldCount, mock.Entries[0].Fields[0].Key)
}
