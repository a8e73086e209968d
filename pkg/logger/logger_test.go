package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// O nível configurado é respeitado pelo logger construído.
func TestNew_RespeitaNivelConfigurado(t *testing.T) {
	cases := []struct {
		level string
		want  zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"qualquer-coisa", zerolog.InfoLevel},
	}
	for _, tc := range cases {
		l := New(Config{Env: "production", Level: tc.level})
		assert.Equal(t, tc.want, l.Zerolog().GetLevel(), "level %q", tc.level)
	}
}
