package venues

import (
	"venueplan/internal/shared/config"
	"venueplan/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupLayoutRoutes(router *gin.RouterGroup, controller Controller, cfg *config.Config) {
	// Public routes - anyone can view layouts, templates and numbering previews
	router.GET("/events/:eventId/layout", controller.GetLayout) // GET /api/v1/events/:eventId/layout

	publicTemplates := router.Group("/layout-templates")
	{
		publicTemplates.GET("", controller.GetTemplates)            // GET /api/v1/layout-templates
		publicTemplates.GET("/:templateId", controller.GetTemplate) // GET /api/v1/layout-templates/:templateId
	}

	numbering := router.Group("/numbering")
	{
		numbering.POST("/preview", controller.PreviewNumbering) // POST /api/v1/numbering/preview
		numbering.GET("/presets", controller.GetPresets)        // GET /api/v1/numbering/presets
	}

	// Editor routes - organizers edit the layout of an event
	editor := router.Group("/events/:eventId")
	editor.Use(middleware.EditorChain(cfg)...)
	{
		// Whole layout
		editor.PUT("/layout", controller.SaveLayout)                    // PUT /api/v1/events/:eventId/layout - Persist
		editor.POST("/layout/import", controller.ImportLayout)          // POST /api/v1/events/:eventId/layout/import
		editor.POST("/layout/apply-template", controller.ApplyTemplate) // POST /api/v1/events/:eventId/layout/apply-template

		// Zones
		editor.POST("/zones", controller.AddZone)
		editor.PATCH("/zones/:zoneId", controller.UpdateZone)
		editor.DELETE("/zones/:zoneId", controller.DeleteZone)
		editor.POST("/zones/:zoneId/duplicate", controller.DuplicateZone)
		editor.POST("/zones/:zoneId/convert", controller.ConvertZone)
		editor.POST("/zones/:zoneId/renumber", controller.RenumberZone)
		editor.POST("/zones/:zoneId/gesture", controller.ZoneGesture)
		editor.POST("/zones/:zoneId/guides", controller.ZoneGuides)

		// Seats
		editor.POST("/zones/:zoneId/seats", controller.CreateSeat)
		editor.DELETE("/zones/:zoneId/seats", controller.DeleteSeats)
		editor.PATCH("/seats/:seatId", controller.UpdateSeat)
		editor.POST("/seats/gesture", controller.SeatGesture)

		// Autosaved drafts
		editor.GET("/draft", controller.GetDraft)
		editor.POST("/draft/restore", controller.RestoreDraft)
		editor.DELETE("/draft", controller.DiscardDraft)
	}

	editorTemplates := router.Group("/layout-templates")
	editorTemplates.Use(middleware.EditorChain(cfg)...)
	{
		editorTemplates.POST("", controller.CreateTemplate) // POST /api/v1/layout-templates
	}
}
