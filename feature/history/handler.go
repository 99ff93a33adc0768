package history

import (
	"errors"

	"prefab-reconciler/core/history"
	"prefab-reconciler/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handler handles HTTP requests for run history.
type Handler struct {
	repo   *history.Repository
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(repo *history.Repository, logger *zap.Logger) *Handler {
	return &Handler{repo: repo, logger: logger}
}

// RegisterRoutes registers the history routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/history")
	group.Get("/", h.HandleList)
	group.Get("/:id", h.HandleGet)
}

// HandleList returns the latest runs.
// @Summary List Runs
// @Description Lists the latest reconcile runs, newest first.
// @Tags history
// @Produce json
// @Param limit query int false "Maximum number of runs (default 50)"
// @Success 200 {array} history.Run "Runs"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /history [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	runs, err := h.repo.List(c.Context(), c.QueryInt("limit", 50))
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Listing runs failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(runs)
}

// HandleGet returns one run.
// @Summary Get Run
// @Description Returns a single reconcile run.
// @Tags history
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} history.Run "Run"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /history/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	run, err := h.repo.Get(c.Context(), c.Params("id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "run not found"})
	}
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Getting run failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(run)
}
