package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferLoggerCaptures(t *testing.T) {
	buf := NewBufferLogger()

	buf.Debug("opening session %s", "abc")
	buf.Info("connected to %s", "web1")
	buf.Warn("slow probe")
	buf.Error("dial failed: %v", "timeout")

	require.Len(t, buf.Messages, 4)
	assert.Equal(t, "debug", buf.Messages[0].Level)
	assert.Equal(t, "opening session abc", buf.Messages[0].Message)
	assert.Equal(t, "dial failed: timeout", buf.Messages[3].Message)

	assert.True(t, buf.HasLevel("warn"))
	assert.False(t, buf.HasLevel("fatal"))

	buf.Clear()
	assert.Empty(t, buf.Messages)
}

func TestNoopDiscards(t *testing.T) {
	log := Noop()
	// Must not panic or emit; there is nothing else to observe.
	log.Debug("x")
	log.Info("x")
	log.Warn("x")
	log.Error("x")
}

func TestSetDefault(t *testing.T) {
	orig := Default()
	defer SetDefault(orig)

	buf := NewBufferLogger()
	SetDefault(buf)

	Default().Info("hello %d", 7)
	require.Len(t, buf.Messages, 1)
	assert.Equal(t, "hello 7", buf.Messages[0].Message)
}
