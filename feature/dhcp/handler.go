package dhcp

import (
	"errors"

	"router-manager/core/logger"
	"router-manager/core/staticlist"
	"router-manager/feature/dhcp/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for DHCP reservations.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the dhcp routes. Paths are kept flat for
// compatibility with the router UI plugin that calls this service.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/test", h.HandleTest)
	app.Post("/dhcp-reservations", h.HandleList)
	app.Post("/dhcp-reservation", h.HandleAdd)
	app.Post("/dhcp-reservations/restore", h.HandleRestore)
	app.Get("/dhcp-reservations/history", h.HandleHistory)
}

// HandleTest verifies router connectivity with the supplied credentials.
// @Summary Test Router Connection
// @Description Connects to the router with the given credentials and returns the current reservations.
// @Tags dhcp
// @Accept json
// @Produce json
// @Param payload body models.Credentials true "Router credentials"
// @Success 200 {object} models.ListResponse "Connection OK"
// @Failure 400 {object} map[string]string "Missing credentials"
// @Failure 500 {object} map[string]string "Connection failed"
// @Router /test [post]
func (h *Handler) HandleTest(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var creds models.Credentials
	if err := c.BodyParser(&creds); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	dec, warning, err := h.service.Test(c.Context(), creds)
	if err != nil {
		l.Error("Router connection test failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	l.Info("Router connection test succeeded", zap.Int("reservations", len(dec.Reservations)))
	return c.JSON(listResponse(dec, warning))
}

// HandleList returns the currently decoded reservation list.
// @Summary List DHCP Reservations
// @Description Fetches and decodes the router's dhcp_staticlist.
// @Tags dhcp
// @Accept json
// @Produce json
// @Param payload body models.Credentials true "Router credentials"
// @Success 200 {object} models.ListResponse "Reservations"
// @Failure 500 {object} map[string]string "Fetch failed"
// @Router /dhcp-reservations [post]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var creds models.Credentials
	if err := c.BodyParser(&creds); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	dec, warning, err := h.service.List(c.Context(), creds)
	if err != nil {
		l.Error("Failed to list reservations", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(listResponse(dec, warning))
}

// HandleAdd adds or updates a single reservation.
// @Summary Add DHCP Reservation
// @Description Adds a reservation, or updates the existing entry with the same MAC. Existing entries are never dropped.
// @Tags dhcp
// @Accept json
// @Produce json
// @Param payload body models.AddRequest true "Reservation and credentials"
// @Success 200 {object} models.AddResponse "Applied (or already present)"
// @Failure 400 {object} map[string]string "Missing mac or ip"
// @Failure 500 {object} map[string]string "Apply failed"
// @Router /dhcp-reservation [post]
func (h *Handler) HandleAdd(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req models.AddRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if req.Mac == "" || req.IP == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing mac or ip"})
	}

	candidate := staticlist.Reservation{MAC: req.Mac, IP: req.IP, Name: req.Name}
	changed, err := h.service.Add(c.Context(), req.Credentials, candidate)
	if err != nil {
		if errors.Is(err, staticlist.ErrMissingIdentity) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Failed to add reservation", zap.Error(err),
			zap.String("mac", req.Mac), zap.String("ip", req.IP))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("Reservation applied",
		zap.String("mac", staticlist.NormalizeMAC(req.Mac)),
		zap.String("ip", req.IP), zap.Bool("changed", changed))

	return c.JSON(models.AddResponse{
		Success: true,
		Changed: changed,
		Mac:     staticlist.NormalizeMAC(req.Mac),
		IP:      req.IP,
		Name:    req.Name,
	})
}

// HandleRestore bulk-restores missing reservations.
// @Summary Restore DHCP Reservations
// @Description Additively merges candidate reservations into the current list. Existing entries are never modified.
// @Tags dhcp
// @Accept json
// @Produce json
// @Param payload body models.RestoreRequest true "Candidates and credentials"
// @Success 200 {object} models.RestoreReport "Restore report"
// @Failure 409 {object} map[string]string "Current list unreadable"
// @Failure 500 {object} map[string]string "Restore failed"
// @Router /dhcp-reservations/restore [post]
func (h *Handler) HandleRestore(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req models.RestoreRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	report, err := h.service.Restore(c.Context(), req.Credentials, req.Reservations, req.MatchByIP, req.DryRun)
	if err != nil {
		if errors.Is(err, ErrUnreadableList) {
			l.Warn("Refusing restore against unreadable list")
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Restore failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(report)
}

// HandleHistory returns recent staticlist snapshots for a host.
// @Summary Staticlist Snapshot History
// @Description Lists the most recent staticlist snapshots recorded before writes.
// @Tags dhcp
// @Accept json
// @Produce json
// @Param host query string false "Router host (defaults to the configured router)"
// @Param limit query int false "Maximum snapshots to return"
// @Success 200 {object} map[string]interface{} "Snapshots"
// @Failure 503 {object} map[string]string "History database not connected"
// @Router /dhcp-reservations/history [get]
func (h *Handler) HandleHistory(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	snaps, err := h.service.History(c.Context(), c.Query("host"), c.QueryInt("limit"))
	if err != nil {
		if errors.Is(err, ErrHistoryDisabled) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Failed to load snapshot history", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "snapshots": snaps})
}

// listResponse converts decode output into the wire shape, surfacing the
// ambiguous empty-decode case as an explicit warning string.
func listResponse(dec staticlist.DecodeResult, warning string) models.ListResponse {
	resp := models.ListResponse{
		Success:      true,
		Reservations: dec.Reservations,
		Grammar:      dec.Grammar,
		Skipped:      dec.Skipped,
		Warning:      warning,
	}
	if resp.Reservations == nil {
		resp.Reservations = []staticlist.Reservation{}
	}
	return resp
}
