package logs

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"amazon-price-tracker/config"
)

func TestLevelFromString(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		" INFO ":  zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"":        zapcore.WarnLevel,
		"bogus":   zapcore.WarnLevel,
	}
	for raw, want := range cases {
		require.Equal(t, want, levelFromString(raw), "level %q", raw)
	}
}

func TestNewLogger_Formats(t *testing.T) {
	for _, format := range []string{"console", "json"} {
		l, err := NewLogger(config.Config{AppName: "t", LogLevel: "debug", LogFormat: format})
		require.NoError(t, err, format)
		require.True(t, l.Core().Enabled(zapcore.DebugLevel))
		require.NotNil(t, NewSugaredLogger(l))
	}
}

func TestRegisterLifecycle_SyncsOnStop(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	RegisterLifecycle(lc, zap.NewNop())

	lc.RequireStart()
	lc.RequireStop()
}
