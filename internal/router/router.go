package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/cachinadev/turismo-app/internal/auth"
	"github.com/cachinadev/turismo-app/internal/domain"
	"github.com/cachinadev/turismo-app/internal/middleware"
)

type Handler interface {
	Health(c *ginext.Context)

	Login(c *ginext.Context)
	Refresh(c *ginext.Context)
	Logout(c *ginext.Context)
	Me(c *ginext.Context)

	ListPackages(c *ginext.Context)
	GetPackageBySlug(c *ginext.Context)
	GetPackageByID(c *ginext.Context)
	CreatePackage(c *ginext.Context)
	UpdatePackage(c *ginext.Context)
	DeletePackage(c *ginext.Context)
	PackageBrochure(c *ginext.Context)

	CreateBooking(c *ginext.Context)
	ListBookings(c *ginext.Context)
	UpdateBookingStatus(c *ginext.Context)

	Upload(c *ginext.Context)
	Contact(c *ginext.Context)
}

func InitRouter(mode string, h Handler, tokens *auth.TokenManager, uploadsDir string, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	router.GET("/health", h.Health)

	api := router.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", h.Login)
		authGroup.POST("/refresh", h.Refresh)
		authGroup.POST("/logout", h.Logout)
		authGroup.GET("/me", middleware.JWTAuth(tokens), h.Me)
	}

	packages := api.Group("/packages")
	{
		// Public reads carry an optional token so operators can preview
		// inactive packages.
		packages.GET("", middleware.OptionalJWT(tokens), h.ListPackages)
		packages.GET("/:slug", middleware.OptionalJWT(tokens), h.GetPackageBySlug)
		packages.GET("/:slug/brochure", middleware.OptionalJWT(tokens), h.PackageBrochure)

		admin := packages.Group("", middleware.JWTAuth(tokens), middleware.RequireRole(domain.RoleAdmin))
		{
			admin.GET("/id/:id", h.GetPackageByID)
			admin.POST("", h.CreatePackage)
			admin.PUT("/:id", h.UpdatePackage)
			admin.DELETE("/:id", h.DeletePackage)
		}
	}

	bookings := api.Group("/bookings")
	{
		bookings.POST("", h.CreateBooking)

		agent := bookings.Group("", middleware.JWTAuth(tokens), middleware.RequireRole(domain.RoleAgent))
		{
			agent.GET("", h.ListBookings)
			agent.PATCH("/:id/status", h.UpdateBookingStatus)
		}
	}

	api.POST("/uploads", middleware.JWTAuth(tokens), middleware.RequireRole(domain.RoleAgent), h.Upload)
	api.POST("/contact", h.Contact)

	router.Static("/uploads", uploadsDir)

	return router
}
