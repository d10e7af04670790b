package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestParseLevel(t *testing.T) {
	t.Run("Should parse known levels and default to info", func(t *testing.T) {
		assert.Equal(t, DebugLevel, ParseLevel("debug"))
		assert.Equal(t, WarnLevel, ParseLevel(" WARN "))
		assert.Equal(t, ErrorLevel, ParseLevel("error"))
		assert.Equal(t, InfoLevel, ParseLevel("info"))
		assert.Equal(t, InfoLevel, ParseLevel("verbose"))
		assert.Equal(t, InfoLevel, ParseLevel(""))
	})
}

func TestNewLogger(t *testing.T) {
	t.Run("Should write JSON records with key values", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewLogger(&Config{Level: InfoLevel, Output: &buf, JSON: true})

		log.Info("loaded projects", "count", 3)

		line := buf.Bytes()
		require.True(t, gjson.ValidBytes(line), buf.String())
		assert.Equal(t, "loaded projects", gjson.GetBytes(line, "msg").String())
		assert.Equal(t, int64(3), gjson.GetBytes(line, "count").Int())
	})

	t.Run("Should drop records below the level", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewLogger(&Config{Level: WarnLevel, Output: &buf})

		log.Info("quiet")
		log.Debug("quieter")

		assert.Empty(t, buf.String())

		log.Warn("loud")
		assert.Contains(t, buf.String(), "loud")
	})

	t.Run("Should carry fields from With", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewLogger(&Config{Level: InfoLevel, Output: &buf, JSON: true}).With("component", "watcher")

		log.Info("started")

		assert.Equal(t, "watcher", gjson.Get(buf.String(), "component").String())
	})
}

func TestFromContext(t *testing.T) {
	t.Run("Should return the logger stored in the context", func(t *testing.T) {
		expected := Discard()
		ctx := ContextWithLogger(context.Background(), expected)

		assert.Equal(t, expected, FromContext(ctx))
	})

	t.Run("Should return a default logger when none is stored", func(t *testing.T) {
		assert.NotNil(t, FromContext(context.Background()))
	})
}
