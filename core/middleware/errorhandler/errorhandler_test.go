package errorhandler_test

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"task-sync/core/apperr"
	"task-sync/core/middleware/errorhandler"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
		detail  string
	}{
		{"MalformedInput", apperr.MalformedInput("missing required columns: Progreso"), 400, "Excel processing error", "missing required columns: Progreso"},
		{"Validation", apperr.Validation("bad count"), 422, "Domain error", "bad count"},
		{"Store", apperr.Wrap(apperr.KindStore, errors.New("timeout"), "failed to read tasks"), 500, "Repository error", "failed to read tasks: timeout"},
		{"Unclassified", errors.New("boom"), 500, "Internal server error", "unexpected error"},
		{"FiberError", fiber.ErrNotFound, 404, "Cannot GET /missing", "Cannot GET /missing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New(fiber.Config{ErrorHandler: errorhandler.New(zap.NewNop())})
			app.Get("/fail", func(c *fiber.Ctx) error { return tt.err })

			path := "/fail"
			if tt.err == fiber.ErrNotFound {
				path = "/missing"
			}

			resp, err := app.Test(httptest.NewRequest("GET", path, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			var body map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, "error", body["status"])
			assert.Equal(t, tt.message, body["message"])
			assert.Equal(t, tt.detail, body["detail"])
		})
	}
}
