package fringego

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigWithersDoNotMutateReceiver(t *testing.T) {
	base := NewConfig()
	withLogger := base.WithLogger(nil)
	withDebug := base.WithDebugRegistry(true)

	require.False(t, base.debugRegistry)
	require.True(t, withDebug.debugRegistry)
	require.NotNil(t, withLogger.logger, "WithLogger(nil) must fall back to a no-op logger, not store nil")
}

func TestNewConfigDefaults(t *testing.T) {
	c := NewConfig()
	require.False(t, c.debugRegistry)
	require.Nil(t, c.pool)
	require.NotNil(t, c.logger)
}
