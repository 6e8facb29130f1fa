package router

import (
	"net/http"

	"github.com/stpnv0/ExpoBooker/internal/domain"
	"github.com/stpnv0/ExpoBooker/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Register(c *ginext.Context)
	Login(c *ginext.Context)
	Logout(c *ginext.Context)
	Me(c *ginext.Context)
	MyEvents(c *ginext.Context)
	BoothGrid(c *ginext.Context)
	CreateEvent(c *ginext.Context)
	UpdateEvent(c *ginext.Context)
	DeleteEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	RegisterForEvent(c *ginext.Context)
	UnregisterFromEvent(c *ginext.Context)
	ExhibitorDashboard(c *ginext.Context)
	AdminDashboard(c *ginext.Context)
	ListUsers(c *ginext.Context)
}

// InitRouter собирает API. mw должны включать middleware.Authenticate,
// иначе все защищённые маршруты ответят 401.
func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	authed := middleware.RequireAuth()
	exhibitor := middleware.RequireRole(domain.RoleExhibitor)
	manager := middleware.RequireRole(domain.RoleExhibitor, domain.RoleAdmin)
	attendee := middleware.RequireRole(domain.RoleAttendee)
	admin := middleware.RequireRole(domain.RoleAdmin)

	api := router.Group("/api")
	{
		// Auth
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)
		api.POST("/auth/logout", authed, h.Logout)
		api.GET("/me", authed, h.Me)
		api.GET("/me/events", authed, h.MyEvents)

		// Events
		api.GET("/booths", h.BoothGrid)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.POST("/events", exhibitor, h.CreateEvent)
		api.PUT("/events/:id", manager, h.UpdateEvent)
		api.DELETE("/events/:id", manager, h.DeleteEvent)

		// Registrations
		api.POST("/events/:id/register", attendee, h.RegisterForEvent)
		api.DELETE("/events/:id/register", attendee, h.UnregisterFromEvent)

		// Dashboards
		api.GET("/dashboard/exhibitor", exhibitor, h.ExhibitorDashboard)
		api.GET("/dashboard/admin", admin, h.AdminDashboard)

		// Users
		api.GET("/users", admin, h.ListUsers)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
