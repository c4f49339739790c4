package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/viewhub/pkg/logger"
)

func TestWithAttrs(t *testing.T) {
	t.Run("records carry context attrs", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))

		log.InfoContext(context.Background(), "without")
		_, ok := decode(t, buf)["run_id"]
		assert.False(t, ok)

		buf.Reset()
		ctx := logger.WithAttrs(context.Background(), logger.RunID("r-1"))
		log.InfoContext(ctx, "with")
		assert.Equal(t, "r-1", decode(t, buf)["run_id"])
	})

	t.Run("later attr replaces same key", func(t *testing.T) {
		ctx := logger.WithAttrs(context.Background(), logger.RunID("r-1"), logger.Notification("outer"))
		ctx = logger.WithAttrs(ctx, logger.Notification("inner"))

		attrs := logger.AttrsFromContext(ctx)
		require.Len(t, attrs, 2)
		assert.Equal(t, "run_id", attrs[0].Key)
		assert.Equal(t, "inner", attrs[1].Value.String())
	})

	t.Run("parent context is unchanged", func(t *testing.T) {
		parent := logger.WithAttrs(context.Background(), logger.Notification("outer"))
		_ = logger.WithAttrs(parent, logger.Notification("inner"))
		attrs := logger.AttrsFromContext(parent)
		require.Len(t, attrs, 1)
		assert.Equal(t, "outer", attrs[0].Value.String())
	})

	t.Run("no attrs returns ctx", func(t *testing.T) {
		ctx := context.Background()
		assert.Equal(t, ctx, logger.WithAttrs(ctx))
		assert.Nil(t, logger.AttrsFromContext(ctx))
	})

	t.Run("empty attrs are dropped", func(t *testing.T) {
		ctx := logger.WithAttrs(context.Background(), logger.Error(nil), logger.Mediator("A"))
		attrs := logger.AttrsFromContext(ctx)
		require.Len(t, attrs, 1)
		assert.Equal(t, "mediator", attrs[0].Key)
	})

	t.Run("explicit record attr wins", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithFormat(logger.FormatText))
		ctx := logger.WithAttrs(context.Background(), logger.Notification("from-ctx"))
		log.InfoContext(ctx, "msg", logger.Notification("explicit"))

		out := buf.String()
		assert.Contains(t, out, "notification=explicit")
		assert.NotContains(t, out, "from-ctx")
	})

	t.Run("survives With and WithGroup", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		ctx := logger.WithAttrs(context.Background(), logger.RunID("r-2"))
		log.With("a", 1).WithGroup("g").InfoContext(ctx, "grouped")

		entry := decode(t, buf)
		group, ok := entry["g"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "r-2", group["run_id"])
	})

	t.Run("level filter still applies", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelWarn))
		log.InfoContext(logger.WithAttrs(context.Background(), logger.RunID("r-3")), "dropped")
		assert.Zero(t, buf.Len())
	})
}
