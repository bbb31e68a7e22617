// Package router wires handlers, middleware and the route policy table
// onto the Echo instance.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/harism06/museum-db/internal/config"
	"github.com/harism06/museum-db/internal/handler"
	"github.com/harism06/museum-db/internal/middleware"
	"github.com/harism06/museum-db/internal/model"
)

// Handlers collects every handler the router mounts.
type Handlers struct {
	Auth          *handler.AuthHandler
	Staff         *handler.StaffHandler
	Catalog       *handler.CatalogHandler
	Checkout      *handler.CheckoutHandler
	Reports       *handler.ReportHandler
	Notifications *handler.NotificationHandler
}

// policy maps each protected route to the minimum role tier it requires.
// Routes missing from the table only require a valid token. Keeping the
// table next to the registrations below makes the two reviewable side by
// side; the role gate consults it on every request.
var policy = middleware.Policy{
	"POST /auth/register-staff": model.RoleSupervisor,

	"GET /api/memberships":        model.RoleEmployee,
	"GET /api/employees":          model.RoleEmployee,
	"PUT /api/update-visitor/:id": model.RoleEmployee,

	"PUT /api/update-employee/:id":    model.RoleSupervisor,
	"DELETE /api/remove-employee/:id": model.RoleSupervisor,

	"POST /api/artists":       model.RoleManager,
	"PUT /api/artists/:id":    model.RoleManager,
	"DELETE /api/artists/:id": model.RoleManager,

	"POST /api/artworks":       model.RoleManager,
	"PUT /api/artworks/:id":    model.RoleManager,
	"DELETE /api/artworks/:id": model.RoleManager,

	"POST /api/galleries":       model.RoleManager,
	"PUT /api/galleries/:id":    model.RoleManager,
	"DELETE /api/galleries/:id": model.RoleManager,

	"POST /api/exhibitions":       model.RoleManager,
	"PUT /api/exhibitions/:id":    model.RoleManager,
	"DELETE /api/exhibitions/:id": model.RoleManager,

	"POST /api/events":       model.RoleManager,
	"PUT /api/events/:id":    model.RoleManager,
	"DELETE /api/events/:id": model.RoleManager,

	"POST /api/storeitems":       model.RoleManager,
	"PUT /api/storeitems/:id":    model.RoleManager,
	"DELETE /api/storeitems/:id": model.RoleManager,

	"GET /reports/transactions": model.RoleManager,
	"GET /reports/museumItems":  model.RoleManager,
}

// Register mounts every route. rdb may be nil, in which case caching and
// rate limiting degrade to pass-throughs.
func Register(e *echo.Echo, cfg config.Config, rdb *redis.Client, h Handlers, roles middleware.RoleSource) {
	rateLimit := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	auth := middleware.JWTAuth(cfg.JWTSecret)
	gate := middleware.RoleGate(policy, roles)

	e.GET("/healthz", handler.Health)

	// Unauthenticated account routes.
	pub := e.Group("/auth", rateLimit)
	pub.POST("/register", h.Auth.Register)
	pub.POST("/login", h.Auth.Login)
	pub.POST("/logout", h.Auth.Logout)

	// Public catalog listings, cached.
	browse := e.Group("/api", rateLimit, cache)
	browse.GET("/artists", h.Catalog.ListArtists)
	browse.GET("/artworks", h.Catalog.ListArtworks)
	browse.GET("/galleries", h.Catalog.ListGalleries)
	browse.GET("/exhibitions", h.Catalog.ListExhibitions)
	browse.GET("/events", h.Catalog.ListEvents)
	browse.GET("/storeitems", h.Catalog.ListStoreItems)

	// The caller's own account.
	account := e.Group("/auth", rateLimit, auth, gate)
	account.GET("/profile", h.Auth.GetProfile)
	account.PUT("/profile", h.Auth.UpdateProfile)
	account.PUT("/membership", h.Auth.UpdateMembership)
	account.POST("/register-staff", h.Auth.RegisterStaff)

	// Everything under /api past this point requires a token; the gate
	// decides per route whether a staff tier is needed as well.
	api := e.Group("/api", rateLimit, auth, gate)

	api.POST("/transactions", h.Checkout.Checkout)
	api.POST("/transactions/:discountCode", h.Checkout.Checkout)
	api.GET("/transactions", h.Checkout.ListTransactions)
	api.GET("/validate-discount-code/:code/:visitorID", h.Checkout.ValidateDiscount)
	api.POST("/tickets", h.Checkout.PurchaseTickets)

	api.GET("/notifications", h.Notifications.ListUnchecked)
	api.PUT("/notifications/check/:id", h.Notifications.MarkChecked)

	api.GET("/memberships", h.Staff.ListMemberships)
	api.GET("/employees", h.Staff.ListEmployees)
	api.PUT("/update-visitor/:id", h.Staff.UpdateVisitor)
	api.PUT("/update-employee/:id", h.Staff.UpdateEmployee)
	api.DELETE("/remove-employee/:id", h.Staff.RemoveEmployee)

	api.POST("/artists", h.Catalog.CreateArtist)
	api.PUT("/artists/:id", h.Catalog.UpdateArtist)
	api.DELETE("/artists/:id", h.Catalog.DeleteArtist)

	api.POST("/artworks", h.Catalog.CreateArtwork)
	api.PUT("/artworks/:id", h.Catalog.UpdateArtwork)
	api.DELETE("/artworks/:id", h.Catalog.DeleteArtwork)

	api.POST("/galleries", h.Catalog.CreateGallery)
	api.PUT("/galleries/:id", h.Catalog.UpdateGallery)
	api.DELETE("/galleries/:id", h.Catalog.DeleteGallery)

	api.POST("/exhibitions", h.Catalog.CreateExhibition)
	api.PUT("/exhibitions/:id", h.Catalog.UpdateExhibition)
	api.DELETE("/exhibitions/:id", h.Catalog.DeleteExhibition)

	api.POST("/events", h.Catalog.CreateEvent)
	api.PUT("/events/:id", h.Catalog.UpdateEvent)
	api.DELETE("/events/:id", h.Catalog.DeleteEvent)

	api.POST("/storeitems", h.Catalog.CreateStoreItem)
	api.PUT("/storeitems/:id", h.Catalog.UpdateStoreItem)
	api.DELETE("/storeitems/:id", h.Catalog.DeleteStoreItem)

	reports := e.Group("/reports", rateLimit, auth, gate)
	reports.GET("/transactions", h.Reports.TransactionsReport)
	reports.GET("/museumItems", h.Reports.MuseumItemsReport)
}
