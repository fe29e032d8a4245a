package http

import (
	mw "edulend-backend/internal/adapter/middleware"

	"github.com/labstack/echo/v4"
)

// RegisterRoutes mounts the application surface. auth must populate
// userID/role; idem may be nil when no idempotency store is configured.
func RegisterRoutes(e *echo.Echo, h *Handler, apps *ApplicationHandler, docs *DocumentHandler, admin *AdminHandler, auth echo.MiddlewareFunc, idem echo.MiddlewareFunc) {
	e.GET("/health", h.Health)

	g := e.Group("/applications")

	// public
	g.GET("/track/:applicationNumber", apps.Track)
	g.GET("/required-documents/:loanType", apps.RequiredDocuments)
	g.GET("/stages", apps.Stages)

	// user
	user := g.Group("", auth)
	if idem != nil {
		user.Use(idem)
	}
	user.POST("", apps.Create)
	user.GET("/my", apps.ListMine)
	user.GET("/:id", apps.GetByID)
	user.GET("/:id/tracking", apps.Tracking)
	user.PUT("/:id", apps.Update)
	user.POST("/:id/submit", apps.Submit)
	user.POST("/:id/cancel", apps.Cancel)
	user.DELETE("/:id", apps.Delete)
	user.GET("/:id/documents", docs.List)
	user.POST("/:id/documents", docs.Upload)
	user.DELETE("/:id/documents/:documentId", docs.Delete)

	// admin
	adm := g.Group("/admin", auth, mw.RequireAdmin)
	adm.GET("/all", admin.ListAll)
	adm.GET("/stats", admin.Stats)
	adm.PUT("/:id/status", admin.UpdateStatus)
	adm.GET("/:id/documents", admin.Documents)
	adm.PUT("/documents/:documentId/verify", admin.VerifyDocument)
	adm.GET("/:id/tracking", admin.Tracking)
	adm.GET("/:id/notes", admin.ListNotes)
	adm.POST("/:id/notes", admin.AddNote)
}
