package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/srirahdirs/YoungZen-Admin-backend/internal/api/dto"
	"github.com/srirahdirs/YoungZen-Admin-backend/internal/service"
	apperrors "github.com/srirahdirs/YoungZen-Admin-backend/pkg/util"
)

// LeadsHandler exposes the public capture endpoint and privileged reads.
type LeadsHandler struct {
	leads *service.LeadService
}

// NewLeadsHandler constructs handler.
func NewLeadsHandler(leads *service.LeadService) *LeadsHandler {
	return &LeadsHandler{leads: leads}
}

// Create handles POST /leads. Public, unauthenticated.
func (h *LeadsHandler) Create(c *fiber.Ctx) error {
	var req dto.LeadRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := req.Validate(); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}

	lead, err := h.leads.Create(c.Context(), req.Name, req.PhoneNumber, req.Category)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Lead submitted successfully",
		"lead":    lead,
	})
}

// List handles GET /leads.
func (h *LeadsHandler) List(c *fiber.Ctx) error {
	leads, err := h.leads.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"leads": leads})
}

// Get handles GET /leads/:id.
func (h *LeadsHandler) Get(c *fiber.Ctx) error {
	lead, err := h.leads.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"lead": lead})
}

// Delete handles DELETE /leads/:id.
func (h *LeadsHandler) Delete(c *fiber.Ctx) error {
	if err := h.leads.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Lead deleted successfully"})
}
