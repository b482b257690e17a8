package records

import (
	"errors"

	"gdkp-ledger/core/logger"
	"gdkp-ledger/feature/session/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for session records.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the records routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/records")
	group.Get("/", h.HandleList)
	group.Get("/:uid", h.HandleGet)
}

// HandleList lists index entries.
// @Summary List sessions
// @Description Returns the session index, newest first, optionally filtered by title.
// @Tags records
// @Produce json
// @Param q query string false "Case-insensitive title filter"
// @Success 200 {object} map[string]interface{} "Index records"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /records [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	entries, err := h.service.Search(c.Query("q"))
	if err != nil {
		l.Error("Failed to read index", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	out := make([]models.IndexRecord, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Record())
	}
	return c.JSON(fiber.Map{"records": out})
}

// HandleGet returns one session record.
// @Summary Get session record
// @Description Returns the normalized record of one session.
// @Tags records
// @Produce json
// @Param uid path string true "Session uid"
// @Success 200 {object} map[string]interface{} "Session record"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /records/{uid} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	uid := c.Params("uid")

	data, err := h.service.Record(uid)
	if errors.Is(err, ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "record not found"})
	}
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Failed to read record", zap.String("uid", uid), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(data)
}
