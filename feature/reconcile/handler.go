package reconcile

import (
	"prefab-reconciler/core/logger"
	"prefab-reconciler/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for reconciliation.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the reconcile routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/reconcile")
	group.Post("/", h.HandleReconcile)
	group.Post("/inspect", h.HandleInspect)
}

// HandleReconcile reconciles two documents.
// @Summary Reconcile Documents
// @Description Renumbers the blocks of the modified document to the ids of the matching original blocks and rewrites every reference.
// @Tags reconcile
// @Accept json
// @Produce json
// @Param request body ReconcileRequest true "Original and modified documents"
// @Success 200 {object} ReconcileResponse "Reconciled document"
// @Failure 400 {object} ErrorResponse "Malformed request"
// @Failure 422 {object} ErrorResponse "Documents cannot be reconciled"
// @Router /reconcile [post]
func (h *Handler) HandleReconcile(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req ReconcileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}

	plan, err := h.service.ReconcileText(c.Context(), req.Original, req.Modified)
	if err != nil {
		l.Warn("Reconcile request failed", zap.Error(err))
		return respondError(c, err)
	}

	l.Info("Reconciled documents",
		zap.Int("blocks", plan.Summary.OriginalBlocks),
		zap.Int("remapped", plan.Summary.Remapped),
	)
	return c.JSON(newReconcileResponse(plan))
}

// HandleInspect lists the blocks of a document.
// @Summary Inspect Document
// @Description Lists every block of a document with its id and descriptor.
// @Tags reconcile
// @Accept json
// @Produce json
// @Param request body InspectRequest true "Document"
// @Success 200 {object} InspectResponse "Blocks"
// @Failure 400 {object} ErrorResponse "Malformed request"
// @Failure 422 {object} ErrorResponse "Malformed document"
// @Router /reconcile/inspect [post]
func (h *Handler) HandleInspect(c *fiber.Ctx) error {
	var req InspectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}

	doc, err := h.service.Inspect(req.Document)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(NewInspectResponse(doc))
}

func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	if reconcile.IsDomainError(err) {
		status = fiber.StatusUnprocessableEntity
	}
	return c.Status(status).JSON(ErrorResponse{Error: err.Error(), Code: string(reconcile.Code(err))})
}
