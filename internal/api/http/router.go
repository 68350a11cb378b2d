package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/srirahdirs/YoungZen-Admin-backend/internal/api/http/handlers"
	"github.com/srirahdirs/YoungZen-Admin-backend/internal/auth"
	"github.com/srirahdirs/YoungZen-Admin-backend/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Users          *handlers.UsersHandler
	Blogs          *handlers.BlogsHandler
	Categories     *handlers.CategoriesHandler
	Portfolio      *handlers.PortfolioHandler
	Seo            *handlers.SeoHandler
	Leads          *handlers.LeadsHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")
	authed := cfg.AuthMiddleware.Handle
	superadminOnly := auth.RequireRole(domain.RoleSuperadmin)
	adminOrSuperadmin := auth.RequireRole(domain.RoleAdmin, domain.RoleSuperadmin)

	authGroup := api.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.Auth.Logout)
	authGroup.Get("/profile", authed, cfg.Users.Profile)

	users := api.Group("/users")
	users.Post("/create", authed, superadminOnly, cfg.Users.Create)
	users.Post("/admin-create", authed, adminOrSuperadmin, cfg.Users.AdminCreate)
	users.Put("/update/:id", authed, superadminOnly, cfg.Users.Update)
	users.Put("/edit-user/:id", authed, adminOrSuperadmin, cfg.Users.UpdateDetails)
	users.Delete("/delete/:id", authed, superadminOnly, cfg.Users.Delete)
	users.Get("/", authed, adminOrSuperadmin, cfg.Users.List)
	users.Put("/profile", authed, cfg.Users.UpdateProfile)
	users.Put("/change-password", authed, cfg.Users.ChangePassword)
	users.Put("/settings", authed, cfg.Users.UpdateSettings)
	users.Get("/login-history", authed, cfg.Users.LoginHistory)

	blogs := api.Group("/blogs")
	blogs.Get("/", cfg.Blogs.List)
	blogs.Get("/stats", authed, superadminOnly, cfg.Blogs.Stats)
	blogs.Get("/:idOrSlug", cfg.Blogs.Get)
	blogs.Post("/", authed, superadminOnly, cfg.Blogs.Create)
	blogs.Put("/:idOrSlug", authed, superadminOnly, cfg.Blogs.Update)
	blogs.Delete("/:idOrSlug", authed, superadminOnly, cfg.Blogs.Delete)

	categories := api.Group("/categories")
	categories.Get("/", cfg.Categories.List)
	categories.Get("/main", cfg.Categories.ListMains)
	categories.Get("/blog-counts", cfg.Categories.BlogCounts)
	categories.Get("/:parentId/subcategories", cfg.Categories.ListSubcategories)
	categories.Get("/:categoryId/blogs", cfg.Categories.BlogsByCategory)
	categories.Get("/:id", cfg.Categories.Get)
	categories.Post("/", authed, superadminOnly, cfg.Categories.Create)
	categories.Put("/:id", authed, superadminOnly, cfg.Categories.Update)
	categories.Delete("/:id", authed, superadminOnly, cfg.Categories.Delete)

	portfolio := api.Group("/portfolio")
	portfolio.Get("/", cfg.Portfolio.List)
	portfolio.Get("/:id", cfg.Portfolio.Get)
	portfolio.Post("/", authed, superadminOnly, cfg.Portfolio.Create)
	portfolio.Put("/:id", authed, superadminOnly, cfg.Portfolio.Update)
	portfolio.Delete("/:id", authed, superadminOnly, cfg.Portfolio.Delete)

	seo := api.Group("/seo-metadata")
	seo.Get("/page/:pageIdentifier", cfg.Seo.GetByPage)
	seo.Get("/id/:id", authed, adminOrSuperadmin, cfg.Seo.Get)
	seo.Get("/", authed, adminOrSuperadmin, cfg.Seo.List)
	seo.Post("/", authed, adminOrSuperadmin, cfg.Seo.Create)
	seo.Post("/bulk/update", authed, adminOrSuperadmin, cfg.Seo.BulkUpdate)
	seo.Put("/:id", authed, adminOrSuperadmin, cfg.Seo.Update)
	seo.Delete("/:id", authed, adminOrSuperadmin, cfg.Seo.Delete)

	leads := api.Group("/leads")
	leads.Post("/", cfg.Leads.Create)
	leads.Get("/", authed, adminOrSuperadmin, cfg.Leads.List)
	leads.Get("/:id", authed, adminOrSuperadmin, cfg.Leads.Get)
	leads.Delete("/:id", authed, superadminOnly, cfg.Leads.Delete)
}
