package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/srirahdirs/YoungZen-Admin-backend/internal/api/dto"
	"github.com/srirahdirs/YoungZen-Admin-backend/internal/service"
	apperrors "github.com/srirahdirs/YoungZen-Admin-backend/pkg/util"
)

// SeoHandler exposes per-page SEO metadata: a public read path for site
// rendering and privileged management endpoints.
type SeoHandler struct {
	seo *service.SeoService
}

// NewSeoHandler constructs handler.
func NewSeoHandler(seo *service.SeoService) *SeoHandler {
	return &SeoHandler{seo: seo}
}

// GetByPage handles GET /seo-metadata/page/:pageIdentifier. Public; served
// from cache when warm.
func (h *SeoHandler) GetByPage(c *fiber.Ctx) error {
	record, err := h.seo.GetByPage(c.Context(), c.Params("pageIdentifier"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"seo_metadata": record})
}

// Get handles GET /seo-metadata/id/:id.
func (h *SeoHandler) Get(c *fiber.Ctx) error {
	record, err := h.seo.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"seo_metadata": record})
}

// List handles GET /seo-metadata with page/limit/search/active filters.
func (h *SeoHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)

	var search *string
	if s := c.Query("search"); s != "" {
		search = &s
	}
	var active *bool
	if a := c.Query("active"); a != "" {
		v := a == "true"
		active = &v
	}

	result, err := h.seo.List(c.Context(), page, limit, search, active)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// Create handles POST /seo-metadata.
func (h *SeoHandler) Create(c *fiber.Ctx) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req dto.SeoRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := req.ValidateCreate(); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}

	record, err := h.seo.Create(c.Context(), actor, seoInput(req))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":      "SEO metadata created successfully",
		"seo_metadata": record,
	})
}

// Update handles PUT /seo-metadata/:id.
func (h *SeoHandler) Update(c *fiber.Ctx) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req dto.SeoRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	record, err := h.seo.Update(c.Context(), actor, c.Params("id"), seoInput(req))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message":      "SEO metadata updated successfully",
		"seo_metadata": record,
	})
}

// Delete handles DELETE /seo-metadata/:id.
func (h *SeoHandler) Delete(c *fiber.Ctx) error {
	if err := h.seo.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "SEO metadata deleted successfully"})
}

// BulkUpdate handles POST /seo-metadata/bulk/update. Items are processed
// independently; one failure does not abort the rest.
func (h *SeoHandler) BulkUpdate(c *fiber.Ctx) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req dto.SeoBulkUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if len(req.Items) == 0 {
		return apperrors.NewValidationError("items must not be empty", nil)
	}

	items := make([]service.BulkItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.BulkItem{
			ID:    item.ID,
			Input: seoInput(item.SeoRequest),
		})
	}

	results := h.seo.BulkUpdate(c.Context(), actor, items)
	return c.JSON(fiber.Map{"results": results})
}

func seoInput(req dto.SeoRequest) service.SeoInput {
	return service.SeoInput{
		PageIdentifier:   req.PageIdentifier,
		PageName:         req.PageName,
		MetaTitle:        req.MetaTitle,
		MetaDescription:  req.MetaDescription,
		OGTitle:          req.OGTitle,
		OGDescription:    req.OGDescription,
		SocialMediaImage: req.SocialMediaImage,
		Keywords:         req.Keywords,
		CanonicalURL:     req.CanonicalURL,
		IsActive:         req.IsActive,
	}
}
