package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)
	require.NotNil(t, logger)

	logger.Info("test message")
	assert.Contains(t, buf.String(), "test message")

	buf.Reset()
	logger.Debug("hidden")
	assert.Zero(t, buf.Len(), "debug is filtered at info level")
}

func TestLoggerContext(t *testing.T) {
	assert.Same(t, log.Default(), loggerFromContext(context.Background()))

	l := newLogger(&bytes.Buffer{}, log.DebugLevel)
	assert.Same(t, l, loggerFromContext(withLogger(context.Background(), l)))
}

func TestRunLogger(t *testing.T) {
	var buf bytes.Buffer
	l, id := runLogger(newLogger(&buf, log.InfoLevel))
	_, err := uuid.Parse(id)
	require.NoError(t, err)

	l.Info("hello")
	assert.Contains(t, buf.String(), "run="+id)
}

func TestConfigContext(t *testing.T) {
	assert.Equal(t, DefaultConfig(), configFromContext(context.Background()))

	cfg := DefaultConfig()
	cfg.Seed = 99
	assert.Equal(t, int64(99), configFromContext(withConfig(context.Background(), cfg)).Seed)
}
