package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/srirahdirs/YoungZen-Admin-backend/internal/api/dto"
	"github.com/srirahdirs/YoungZen-Admin-backend/internal/service"
	apperrors "github.com/srirahdirs/YoungZen-Admin-backend/pkg/util"
)

// CategoriesHandler exposes the category tree and its privileged writes.
type CategoriesHandler struct {
	categories *service.CategoryService
}

// NewCategoriesHandler constructs handler.
func NewCategoriesHandler(categories *service.CategoryService) *CategoriesHandler {
	return &CategoriesHandler{categories: categories}
}

// List handles GET /categories. Returns all active categories, mains first.
func (h *CategoriesHandler) List(c *fiber.Ctx) error {
	categories, err := h.categories.ListActive(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"categories": categories})
}

// ListMains handles GET /categories/main.
func (h *CategoriesHandler) ListMains(c *fiber.Ctx) error {
	categories, err := h.categories.ListMains(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"categories": categories})
}

// ListSubcategories handles GET /categories/:parentId/subcategories.
func (h *CategoriesHandler) ListSubcategories(c *fiber.Ctx) error {
	categories, err := h.categories.ListSubcategories(c.Context(), c.Params("parentId"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"categories": categories})
}

// Get handles GET /categories/:id.
func (h *CategoriesHandler) Get(c *fiber.Ctx) error {
	category, err := h.categories.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"category": category})
}

// Create handles POST /categories.
func (h *CategoriesHandler) Create(c *fiber.Ctx) error {
	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := req.ValidateCreate(); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}

	category, err := h.categories.Create(c.Context(), categoryInput(req))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Category created successfully",
		"category": category,
	})
}

// Update handles PUT /categories/:id.
func (h *CategoriesHandler) Update(c *fiber.Ctx) error {
	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	category, err := h.categories.Update(c.Context(), c.Params("id"), categoryInput(req))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message":  "Category updated successfully",
		"category": category,
	})
}

// Delete handles DELETE /categories/:id. Refused while any blog or
// subcategory still references the category.
func (h *CategoriesHandler) Delete(c *fiber.Ctx) error {
	if err := h.categories.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Category deleted successfully"})
}

// BlogCounts handles GET /categories/blog-counts.
func (h *CategoriesHandler) BlogCounts(c *fiber.Ctx) error {
	main, sub, total, err := h.categories.BlogCounts(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"main_categories": main,
		"subcategories":   sub,
		"total_blogs":     total,
	})
}

// BlogsByCategory handles GET /categories/:categoryId/blogs.
func (h *CategoriesHandler) BlogsByCategory(c *fiber.Ctx) error {
	blogs, err := h.categories.BlogsByCategory(c.Context(), c.Params("categoryId"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"blogs": blogs})
}

func categoryInput(req dto.CategoryRequest) service.CategoryInput {
	return service.CategoryInput{
		Name:             req.Name,
		Type:             req.Type,
		ParentCategoryID: req.ParentCategoryID,
		Description:      req.Description,
		IsActive:         req.IsActive,
	}
}
