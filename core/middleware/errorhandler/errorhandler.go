package errorhandler

import (
	"errors"

	"task-sync/core/apperr"
	"task-sync/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// New returns a fiber.ErrorHandler that renders classified errors as
// {"status":"error","message":...,"detail":...}.
func New(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(fiber.Map{
				"status":  "error",
				"message": fe.Message,
				"detail":  fe.Message,
			})
		}

		kind := apperr.KindOf(err)
		status := apperr.HTTPStatus(kind)

		l := logger.WithRayID(log, c)
		if status >= fiber.StatusInternalServerError {
			l.Error("Request failed", zap.String("kind", string(kind)), zap.Error(err))
		} else {
			l.Warn("Request rejected", zap.String("kind", string(kind)), zap.Error(err))
		}

		detail := err.Error()
		if kind == apperr.KindInternal {
			detail = "unexpected error"
		}

		return c.Status(status).JSON(fiber.Map{
			"status":  "error",
			"message": apperr.Title(kind),
			"detail":  detail,
		})
	}
}
