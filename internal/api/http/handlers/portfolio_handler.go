package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/srirahdirs/YoungZen-Admin-backend/internal/api/dto"
	"github.com/srirahdirs/YoungZen-Admin-backend/internal/service"
	apperrors "github.com/srirahdirs/YoungZen-Admin-backend/pkg/util"
)

// PortfolioHandler exposes the public gallery and its privileged writes.
type PortfolioHandler struct {
	portfolios *service.PortfolioService
}

// NewPortfolioHandler constructs handler.
func NewPortfolioHandler(portfolios *service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{portfolios: portfolios}
}

// List handles GET /portfolio.
func (h *PortfolioHandler) List(c *fiber.Ctx) error {
	entries, err := h.portfolios.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"portfolios": entries})
}

// Get handles GET /portfolio/:id.
func (h *PortfolioHandler) Get(c *fiber.Ctx) error {
	entry, err := h.portfolios.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"portfolio": entry})
}

// Create handles POST /portfolio.
func (h *PortfolioHandler) Create(c *fiber.Ctx) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req dto.PortfolioRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := req.ValidateCreate(); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}

	entry, err := h.portfolios.Create(c.Context(), actor, portfolioInput(req))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":   "Portfolio created successfully",
		"portfolio": entry,
	})
}

// Update handles PUT /portfolio/:id.
func (h *PortfolioHandler) Update(c *fiber.Ctx) error {
	var req dto.PortfolioRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	entry, err := h.portfolios.Update(c.Context(), c.Params("id"), portfolioInput(req))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message":   "Portfolio updated successfully",
		"portfolio": entry,
	})
}

// Delete handles DELETE /portfolio/:id.
func (h *PortfolioHandler) Delete(c *fiber.Ctx) error {
	if err := h.portfolios.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Portfolio deleted successfully"})
}

func portfolioInput(req dto.PortfolioRequest) service.PortfolioInput {
	return service.PortfolioInput{
		Name:        req.Name,
		URL:         req.URL,
		Description: req.Description,
		Images:      req.Images,
	}
}
