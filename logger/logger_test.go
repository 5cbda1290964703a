package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestWithFieldsAndError(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := NewZapAdapter(zap.New(core))

	log.WithFields(map[string]interface{}{"kind": "load"}).
		WithError(errors.New("boom")).
		Warn("estimate failed", map[string]interface{}{"field": "squareFootage"})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "estimate failed", entry.Message)
	ctx := entry.ContextMap()
	assert.Equal(t, "load", ctx["kind"])
	assert.Equal(t, "boom", ctx["error"])
	assert.Equal(t, "squareFootage", ctx["field"])
}

func TestNew(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		zl, err := New("debug", format)
		require.NoError(t, err)
		assert.True(t, zl.Core().Enabled(zap.DebugLevel))
		NewZapAdapter(zl).Debug("hello", nil)
	}

	zl, err := New("warn", "json")
	require.NoError(t, err)
	assert.False(t, zl.Core().Enabled(zap.InfoLevel))
}
