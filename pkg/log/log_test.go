package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    LogLevel
		wantErr bool
	}{
		{in: "error", want: LogLevelError},
		{in: "warn", want: LogLevelWarn},
		{in: "info", want: LogLevelInfo},
		{in: "debug", want: LogLevelDebug},
		{in: "trace", want: LogLevelTrace},
		{in: "verbose", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLogLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, got.String())
		})
	}
}

func TestLogger_Level(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(buf, "", 0, LogLevelInfo)

	logger.Debug("hidden")
	logger.Info("coins: %d", 250)
	logger.Error("boom")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	entry := map[string]string{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, map[string]string{"level": "info", "msg": "coins: 250"}, entry)
}

func TestSetDefaultLogger(t *testing.T) {
	previous := getDefaultLogger()
	t.Cleanup(func() { SetDefaultLogger(previous) })

	buf := &bytes.Buffer{}
	SetDefaultLogger(New(buf, "", 0, LogLevelWarn))

	Info("dropped")
	Warn("kept %s", "warning")

	assert.Contains(t, buf.String(), `"msg":"kept warning"`)
	assert.NotContains(t, buf.String(), "dropped")
}
