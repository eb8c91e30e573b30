package notify

import (
	"context"
	"fmt"
	"testing"

	"stockview-be/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRecorder(t *testing.T) {
	ctx := context.Background()

	t.Run("DrainEmpties", func(t *testing.T) {
		r := NewRecorder(10)
		r.Notify(ctx, LevelSuccess, "Filters applied successfully")
		r.Notify(ctx, LevelInfo, "Filters reset")

		got := r.Drain()
		require.Len(t, got, 2)
		assert.Equal(t, LevelSuccess, got[0].Level)
		assert.Equal(t, "Filters reset", got[1].Message)
		assert.False(t, got[0].At.IsZero())

		assert.Empty(t, r.Drain())
		assert.NotNil(t, r.Drain())
	})

	t.Run("DropsOldest", func(t *testing.T) {
		r := NewRecorder(3)
		for i := 0; i < 5; i++ {
			r.Notify(ctx, LevelInfo, fmt.Sprintf("msg-%d", i))
		}

		got := r.Peek()
		require.Len(t, got, 3)
		assert.Equal(t, "msg-2", got[0].Message)
		assert.Equal(t, "msg-4", got[2].Message)
		assert.Len(t, r.Drain(), 3)
	})

	t.Run("DefaultCapacity", func(t *testing.T) {
		r := NewRecorder(0)
		for i := 0; i < DefaultRecorderCapacity+5; i++ {
			r.Notify(ctx, LevelInfo, "x")
		}
		assert.Len(t, r.Drain(), DefaultRecorderCapacity)
	})
}

func TestLogSink(t *testing.T) {
	core, observed := observer.New(zapcore.DebugLevel)
	t.Cleanup(logger.Replace(zap.New(core)))

	LogSink{}.Notify(context.Background(), LevelSuccess, "Product added successfully!")
	LogSink{}.Notify(context.Background(), LevelError, "Failed to add product. Please try again.")

	logs := observed.TakeAll()
	require.Len(t, logs, 2)
	assert.Equal(t, zapcore.InfoLevel, logs[0].Level)
	assert.Equal(t, "success", logs[0].ContextMap()["level"])
	assert.Equal(t, zapcore.WarnLevel, logs[1].Level)
}

func TestMulti(t *testing.T) {
	a, b := NewRecorder(5), NewRecorder(5)
	sink := Multi(a, nil, b, Nop{})

	sink.Notify(context.Background(), LevelInfo, "You have been logged out")

	assert.Len(t, a.Drain(), 1)
	assert.Len(t, b.Drain(), 1)
}
