package tasks

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"

	"task-sync/core/apperr"
	"task-sync/core/logger"
	"task-sync/core/middleware/rayid"
	"task-sync/core/normalize"
	"task-sync/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for tasks.
type Handler struct {
	service  *Service
	archiver *Archiver
	logger   *zap.Logger
}

// NewHandler creates a new HTTP handler. archiver may be nil.
func NewHandler(service *Service, archiver *Archiver, logger *zap.Logger) *Handler {
	return &Handler{service: service, archiver: archiver, logger: logger}
}

// RegisterRoutes registers the task routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api/v1")
	group.Post("/procesar-excel", h.HandleProcessExcel)
	group.Get("/tareas", h.HandleListTasks)
	group.Get("/tareas/resumen", h.HandleSummary)
}

// HandleProcessExcel reconciles an uploaded workbook with the task table.
// @Summary Process Excel
// @Description Parse a planner export and insert or update the tasks it contains.
// @Tags tasks
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Planner export (.xlsx)"
// @Param dry_run query bool false "Report the changes without writing them"
// @Success 200 {object} map[string]interface{} "Sync result"
// @Failure 400 {object} map[string]string "Excel processing error"
// @Failure 422 {object} map[string]string "Domain error"
// @Failure 500 {object} map[string]string "Repository error"
// @Router /api/v1/procesar-excel [post]
func (h *Handler) HandleProcessExcel(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	fh, err := c.FormFile("file")
	if err != nil {
		return apperr.MalformedInput("multipart field \"file\" is required")
	}
	if !strings.EqualFold(filepath.Ext(fh.Filename), ".xlsx") {
		return apperr.MalformedInput("file %q is not an .xlsx workbook", fh.Filename)
	}

	f, err := fh.Open()
	if err != nil {
		return &apperr.Error{Kind: apperr.KindMalformedInput, Message: "failed to open upload", Err: err}
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return &apperr.Error{Kind: apperr.KindMalformedInput, Message: "failed to read upload", Err: err}
	}

	l.Info("Workbook received", zap.String("file", fh.Filename), zap.Int("bytes", len(data)))

	if h.archiver != nil {
		if key, err := h.archiver.Archive(c.UserContext(), rayid.FromCtx(c), fh.Filename, data); err != nil {
			l.Warn("Workbook archive failed", zap.Error(err))
		} else {
			l.Info("Workbook archived", zap.String("key", key))
		}
	}

	var res *Result
	if c.QueryBool("dry_run") {
		res, err = h.service.Preview(c.UserContext(), bytes.NewReader(data))
	} else {
		res, err = h.service.Sync(c.UserContext(), bytes.NewReader(data))
	}
	if err != nil {
		return err
	}

	return c.JSON(utils.SanitizeJSON(fiber.Map{
		"status": "success",
		"data":   res,
	}))
}

// HandleListTasks lists the stored tasks.
// @Summary List tasks
// @Description List stored tasks with optional filters.
// @Tags tasks
// @Produce json
// @Param search query string false "Matches task name or id, ignoring case and accents"
// @Param progreso query string false "Progress value"
// @Param asignado_a query string false "Assignee"
// @Param completado_por query string false "Completed by"
// @Param desde query string false "Created on or after (YYYY-MM-DD or DD/MM/YYYY)"
// @Param hasta query string false "Due on or before (YYYY-MM-DD or DD/MM/YYYY)"
// @Success 200 {object} map[string]interface{} "Tasks"
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 500 {object} map[string]string "Repository error"
// @Router /api/v1/tareas [get]
func (h *Handler) HandleListTasks(c *fiber.Ctx) error {
	from, err := queryDate(c, "desde")
	if err != nil {
		return err
	}
	until, err := queryDate(c, "hasta")
	if err != nil {
		return err
	}

	list, err := h.service.List(c.UserContext(), Filter{
		Search:      c.Query("search"),
		Progress:    c.Query("progreso"),
		AssignedTo:  c.Query("asignado_a"),
		CompletedBy: c.Query("completado_por"),
		CreatedFrom: from,
		DueUntil:    until,
	})
	if err != nil {
		return err
	}

	return c.JSON(utils.SanitizeJSON(fiber.Map{
		"status": "success",
		"data":   list,
	}))
}

// HandleSummary returns aggregate task counts.
// @Summary Task summary
// @Description Count stored tasks by progress, lateness and verified effectiveness.
// @Tags tasks
// @Produce json
// @Success 200 {object} map[string]interface{} "Summary"
// @Failure 500 {object} map[string]string "Repository error"
// @Router /api/v1/tareas/resumen [get]
func (h *Handler) HandleSummary(c *fiber.Ctx) error {
	sum, err := h.service.Summary(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"status": "success",
		"data":   sum,
	})
}

func queryDate(c *fiber.Ctx, key string) (string, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return "", nil
	}
	d, ok := normalize.ParseDate(raw)
	if !ok {
		return "", fiber.NewError(fiber.StatusBadRequest, "invalid date in "+key+": "+raw)
	}
	return d.Format(normalize.DateLayout), nil
}
