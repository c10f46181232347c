package logger_test

import (
	"os"
	"path/filepath"
	"testing"

	"task-sync/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		cfg  logger.Config
	}{
		{"DebugConsole", logger.Config{Level: "debug", Format: "console"}},
		{"InfoJSON", logger.Config{Level: "info", Format: "json"}},
		{"UnknownLevel", logger.Config{Level: "verbose"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := logger.New(&tt.cfg)
			require.NoError(t, err)
			assert.NotNil(t, l)
		})
	}
}

func TestNew_WritesRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sync.log")

	l, err := logger.New(&logger.Config{Level: "warn", File: path, MaxSizeMB: 1})
	require.NoError(t, err)

	l.Info("below threshold")
	l.Warn("rows dropped", zap.Int("dropped", 2))
	_ = l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "rows dropped")
	assert.NotContains(t, string(data), "below threshold")
}

func TestWithRayID(t *testing.T) {
	app := fiber.New()
	c := app.AcquireCtx(&fasthttp.RequestCtx{})
	defer app.ReleaseCtx(c)

	base := zap.NewNop()
	assert.Same(t, base, logger.WithRayID(base, c))

	c.Locals("ray_id", "abc")
	assert.NotSame(t, base, logger.WithRayID(base, c))
}
