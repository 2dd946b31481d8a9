package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestTruncateForLog(t *testing.T) {
	assert.Equal(t, "abc", TruncateForLog("  abc  ", 5))
	assert.Equal(t, "ab...", TruncateForLog("abcdef", 2))
	assert.Equal(t, "", TruncateForLog("abc", 0))
	assert.Equal(t, "héll...", TruncateForLog("héllo wörld", 4))
}

func TestForRequest(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	l := zap.New(core)

	ForRequest(l, "feedback", " req-1 ").Info("analyzing")

	entries := observed.All()
	require.Len(t, entries, 1)

	ctx := entries[0].ContextMap()
	assert.Equal(t, "feedback", ctx[FieldPipeline])
	assert.Equal(t, "req-1", ctx[FieldRequestID])
}

func TestForRequestSkipsEmptyFields(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	l := zap.New(core)

	ForRequest(l, "", "  ").Info("plain")

	entries := observed.All()
	require.Len(t, entries, 1)
	assert.Empty(t, entries[0].ContextMap())

	// A nil logger must not panic.
	ForRequest(nil, "resume", "id").Info("discarded")
}

func TestNew(t *testing.T) {
	l, err := New(true, true, Stdout)
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))

	l, err = New(false, false, "")
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))

	l, err = New(false, false, Stderr)
	require.NoError(t, err)
	assert.NotNil(t, l)
}

func TestNewWritesToOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hrtool.log")

	l, err := New(true, false, path)
	require.NoError(t, err)
	l.Info("feedback analysis completed", zap.String(FieldPipeline, "feedback"))
	_ = l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"feedback analysis completed"`)
	assert.Contains(t, string(data), `"pipeline":"feedback"`)
}
