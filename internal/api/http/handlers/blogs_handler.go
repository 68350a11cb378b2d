package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/srirahdirs/YoungZen-Admin-backend/internal/api/dto"
	"github.com/srirahdirs/YoungZen-Admin-backend/internal/service"
	apperrors "github.com/srirahdirs/YoungZen-Admin-backend/pkg/util"
)

// BlogsHandler exposes public reads and privileged writes for blog posts.
type BlogsHandler struct {
	blogs *service.BlogService
}

// NewBlogsHandler constructs handler.
func NewBlogsHandler(blogs *service.BlogService) *BlogsHandler {
	return &BlogsHandler{blogs: blogs}
}

// List handles GET /blogs with page/limit query parameters.
func (h *BlogsHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)

	result, err := h.blogs.List(c.Context(), page, limit)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// Get handles GET /blogs/:idOrSlug. The parameter is tried as an id first,
// then as a slug.
func (h *BlogsHandler) Get(c *fiber.Ctx) error {
	blog, err := h.blogs.Get(c.Context(), c.Params("idOrSlug"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"blog": blog})
}

// Create handles POST /blogs.
func (h *BlogsHandler) Create(c *fiber.Ctx) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req dto.BlogRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := req.ValidateCreate(); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}

	blog, err := h.blogs.Create(c.Context(), actor, blogInput(req))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Blog created successfully",
		"blog":    blog,
	})
}

// Update handles PUT /blogs/:idOrSlug. Only the fields present in the payload
// change.
func (h *BlogsHandler) Update(c *fiber.Ctx) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req dto.BlogRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	blog, err := h.blogs.Update(c.Context(), actor, c.Params("idOrSlug"), blogInput(req))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Blog updated successfully",
		"blog":    blog,
	})
}

// Delete handles DELETE /blogs/:idOrSlug.
func (h *BlogsHandler) Delete(c *fiber.Ctx) error {
	if err := h.blogs.Delete(c.Context(), c.Params("idOrSlug")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Blog deleted successfully"})
}

// Stats handles GET /blogs/stats.
func (h *BlogsHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.blogs.Stats(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"stats": stats})
}

func blogInput(req dto.BlogRequest) service.BlogInput {
	return service.BlogInput{
		Title:           req.Title,
		Slug:            req.Slug,
		Description:     req.Description,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		PublishedDate:   req.PublishedDate,
		Status:          req.Status,
		Banner:          req.Banner,
		Thumbnail:       req.Thumbnail,
		MobileBanner:    req.MobileBanner,
		MainCategoryID:  req.MainCategoryID,
		SubcategoryIDs:  req.SubcategoryIDs,
		Tags:            req.Tags,
	}
}
