package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/johnquangdev/notulensi/internal/infrastructure/metrics"
	"github.com/johnquangdev/notulensi/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg               *config.Config
	authHandler       *Auth
	userHandler       *User
	meetingHandler    *Meeting
	actionItemHandler *ActionItem
	exportHandler     *Export
	authMiddleware    echo.MiddlewareFunc
	metrics           *metrics.Metrics
}

// Handlers groups the handlers the router mounts
type Handlers struct {
	Auth       *Auth
	User       *User
	Meeting    *Meeting
	ActionItem *ActionItem
	Export     *Export
}

// NewRouter creates a new router with all handlers. m may be nil.
func NewRouter(cfg *config.Config, h Handlers, authMiddleware echo.MiddlewareFunc, m *metrics.Metrics) *Router {
	return &Router{
		cfg:               cfg,
		authHandler:       h.Auth,
		userHandler:       h.User,
		meetingHandler:    h.Meeting,
		actionItemHandler: h.ActionItem,
		exportHandler:     h.Export,
		authMiddleware:    authMiddleware,
		metrics:           m,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	if rt.metrics != nil {
		e.Use(rt.metrics.Middleware())
		e.GET("/metrics", echo.WrapHandler(rt.metrics.Handler()))
	}

	// Swagger documentation
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupAuthRoutes(v1)
	rt.setupUserRoutes(v1)
	rt.setupMeetingRoutes(v1)
	rt.setupActionItemRoutes(v1)
}

// setupAuthRoutes configures authentication routes
func (rt *Router) setupAuthRoutes(g *echo.Group) {
	authGroup := g.Group("/auth")

	authGroup.POST("/login", rt.authHandler.Login)
	authGroup.POST("/logout", rt.authHandler.Logout, rt.authMiddleware)
	authGroup.GET("/me", rt.authHandler.Me, rt.authMiddleware)
}

// setupUserRoutes configures the user directory
func (rt *Router) setupUserRoutes(g *echo.Group) {
	g.GET("/users", rt.userHandler.List, rt.authMiddleware)
}

// setupMeetingRoutes configures meeting, minutes and export routes
func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	meetings := g.Group("/meetings", rt.authMiddleware)

	meetings.GET("", rt.meetingHandler.Dashboard)
	meetings.GET("/archive", rt.meetingHandler.Archive)
	meetings.POST("", rt.meetingHandler.Create)
	meetings.GET("/:id", rt.meetingHandler.Get)
	meetings.PUT("/:id", rt.meetingHandler.Update)
	meetings.DELETE("/:id", rt.meetingHandler.Delete)

	meetings.PUT("/:id/minutes/summary", rt.meetingHandler.UpdateSummary)
	meetings.POST("/:id/action-items", rt.meetingHandler.CreateActionItem)
	meetings.PUT("/:id/action-items/:itemId", rt.meetingHandler.UpdateActionItem)
	meetings.DELETE("/:id/action-items/:itemId", rt.meetingHandler.DeleteActionItem)
	meetings.POST("/:id/attachments", rt.meetingHandler.AddAttachment)
	meetings.DELETE("/:id/attachments/:attachmentId", rt.meetingHandler.DeleteAttachment)
	meetings.POST("/:id/participants", rt.meetingHandler.AddParticipant)
	meetings.DELETE("/:id/participants/:userId", rt.meetingHandler.RemoveParticipant)

	meetings.GET("/:id/export", rt.exportHandler.Download)
	meetings.GET("/:id/exports", rt.exportHandler.ListArchived)
}

// setupActionItemRoutes configures the cross-meeting action plan
func (rt *Router) setupActionItemRoutes(g *echo.Group) {
	items := g.Group("/action-items", rt.authMiddleware)

	items.GET("", rt.actionItemHandler.List)
	items.PATCH("/:meetingId/:itemId/status", rt.actionItemHandler.ChangeStatus)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
