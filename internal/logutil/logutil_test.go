package logutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestLogConfig_getter(t *testing.T) {
	tests := []struct {
		name      string
		cfg       LogConfig
		wantLevel zap.AtomicLevel
		entry     zapcore.Entry
		wantJSON  bool
	}{
		{
			name:      "console",
			cfg:       LogConfig{Level: "debug", Format: "console"},
			wantLevel: zap.NewAtomicLevelAt(zap.DebugLevel),
			entry:     zapcore.Entry{Level: zapcore.DebugLevel, Message: "console msg"},
		},
		{
			name:      "json",
			cfg:       LogConfig{Level: "warn", Format: "json"},
			wantLevel: zap.NewAtomicLevelAt(zap.WarnLevel),
			entry:     zapcore.Entry{Level: zapcore.WarnLevel, Message: "json msg"},
			wantJSON:  true,
		},
		{
			name:      "bad level",
			cfg:       LogConfig{Level: "loud"},
			wantLevel: zap.NewAtomicLevelAt(zap.InfoLevel),
			entry:     zapcore.Entry{Level: zapcore.InfoLevel, Message: "fallback"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.wantLevel.Level(), tt.cfg.getLevel().Level())
			require.Len(t, tt.cfg.getOptions(), 2)
			require.Equal(t, getConsoleSyncer(), tt.cfg.getSyncer())

			buf, err := tt.cfg.getEncoder().EncodeEntry(tt.entry, nil)
			require.NoError(t, err)
			require.Contains(t, buf.String(), tt.entry.Message)
			require.Equal(t, tt.wantJSON, buf.Bytes()[0] == '{')
		})
	}
}

func TestSetupLoggerToFile(t *testing.T) {
	saved := GetGlobalLogger()
	defer SetGlobalLogger(saved)

	name := filepath.Join(t.TempDir(), "tokenize.log")
	l := SetupLogger(&LogConfig{Level: "info", Format: "json", Filename: name, MaxSize: 1})
	require.Same(t, l, GetGlobalLogger())

	GetGlobalLogger().Info("hello", zap.Int("line", 3))
	require.NoError(t, l.Sync())

	bs, err := os.ReadFile(name)
	require.NoError(t, err)
	require.Contains(t, string(bs), `"msg":"hello"`)
	require.Contains(t, string(bs), `"line":3`)
}

func TestGlobalLoggerDefault(t *testing.T) {
	require.NotNil(t, GetGlobalLogger())
	require.True(t, GetGlobalLogger().Core().Enabled(zapcore.WarnLevel))
}
