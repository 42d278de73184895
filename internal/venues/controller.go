package venues

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"venueplan/internal/shared/utils/response"
)

type Controller interface {
	// Event layouts
	GetLayout(c *gin.Context)
	SaveLayout(c *gin.Context)
	ImportLayout(c *gin.Context)

	// Zones
	AddZone(c *gin.Context)
	UpdateZone(c *gin.Context)
	DuplicateZone(c *gin.Context)
	DeleteZone(c *gin.Context)
	ConvertZone(c *gin.Context)
	RenumberZone(c *gin.Context)
	ZoneGesture(c *gin.Context)
	ZoneGuides(c *gin.Context)

	// Seats
	CreateSeat(c *gin.Context)
	DeleteSeats(c *gin.Context)
	UpdateSeat(c *gin.Context)
	SeatGesture(c *gin.Context)

	// Drafts
	GetDraft(c *gin.Context)
	RestoreDraft(c *gin.Context)
	DiscardDraft(c *gin.Context)

	// Templates
	CreateTemplate(c *gin.Context)
	GetTemplates(c *gin.Context)
	GetTemplate(c *gin.Context)
	ApplyTemplate(c *gin.Context)

	// Numbering
	PreviewNumbering(c *gin.Context)
	GetPresets(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

// respondError writes err with the status its kind maps to. Declined confirmations
// carry the reason so the client can ask the user and retry with confirm set.
func respondError(c *gin.Context, err error) {
	var confirmErr *ConfirmationError
	if errors.As(err, &confirmErr) {
		response.RespondJSON(c, "error", http.StatusConflict, err.Error(), nil, gin.H{
			"code":   ErrConfirmationRequired.Error(),
			"reason": confirmErr.Reason,
		})
		return
	}
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	response.RespondJSON(c, "error", status, err.Error(), nil, nil)
}

// ============= EVENT LAYOUTS =============

// GetLayout godoc
// @Summary      Get an event's seating layout
// @Tags         layouts
// @Produce      json
// @Param        eventId  path  string  true  "Event ID"
// @Success      200  {object}  response.StandardApiResponse{data=LayoutResponse}
// @Router       /events/{eventId}/layout [get]
func (ctrl *controller) GetLayout(c *gin.Context) {
	layoutResp, err := ctrl.service.GetLayout(c.Request.Context(), c.Param("eventId"))
	if err != nil {
		respondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Layout retrieved successfully", layoutResp, nil)
}

// SaveLayout godoc
// @Summary      Persist the edited layout
// @Tags         layouts
// @Produce      json
// @Param        eventId  path  string  true  "Event ID"
// @Success      200  {object}  response.StandardApiResponse{data=SaveLayoutResponse}
// @Router       /events/{eventId}/layout [put]
func (ctrl *controller) SaveLayout(c *gin.Context) {
	saved, err := ctrl.service.SaveLayout(c.Request.Context(), c.Param("eventId"))
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Layout saved successfully"
	if saved.Stale {
		message = "Layout saved; newer edits are not yet persisted"
	}
	response.RespondJSON(c, "success", http.StatusOK, message, saved, nil)
}

func (ctrl *controller) ImportLayout(c *gin.Context) {
	var req ImportLayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	layoutResp, err := ctrl.service.ImportLayout(c.Request.Context(), c.Param("eventId"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Layout imported successfully", layoutResp, nil)
}

// ============= ZONES =============

// AddZone godoc
// @Summary      Add a zone with default geometry
// @Tags         zones
// @Produce      json
// @Param        eventId  path  string  true  "Event ID"
// @Success      201  {object}  response.StandardApiResponse{data=ZoneResponse}
// @Router       /events/{eventId}/zones [post]
func (ctrl *controller) AddZone(c *gin.Context) {
	zone, err := ctrl.service.AddZone(c.Request.Context(), c.Param("eventId"))
	if err != nil {
		respondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Zone created successfully", zone, nil)
}

// UpdateZone godoc
// @Summary      Update zone properties
// @Description  Changing rows, cols or type of a zone with seats needs confirm=true.
// @Tags         zones
// @Accept       json
// @Produce      json
// @Param        eventId  path  string             true  "Event ID"
// @Param        zoneId   path  string             true  "Zone ID"
// @Param        request  body  UpdateZoneRequest  true  "Zone patch"
// @Success      200  {object}  response.StandardApiResponse{data=ZoneResponse}
// @Failure      409  {object}  response.StandardApiResponse
// @Router       /events/{eventId}/zones/{zoneId} [patch]
func (ctrl *controller) UpdateZone(c *gin.Context) {
	var req UpdateZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	zone, err := ctrl.service.UpdateZone(c.Request.Context(), c.Param("eventId"), c.Param("zoneId"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Zone updated successfully", zone, nil)
}

func (ctrl *controller) DuplicateZone(c *gin.Context) {
	zone, err := ctrl.service.DuplicateZone(c.Request.Context(), c.Param("eventId"), c.Param("zoneId"))
	if err != nil {
		respondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Zone duplicated successfully", zone, nil)
}

func (ctrl *controller) DeleteZone(c *gin.Context) {
	if err := ctrl.service.DeleteZone(c.Request.Context(), c.Param("eventId"), c.Param("zoneId")); err != nil {
		respondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Zone deleted successfully", nil, nil)
}

func (ctrl *controller) ConvertZone(c *gin.Context) {
	var req ConvertZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	zone, err := ctrl.service.ConvertZone(c.Request.Context(), c.Param("eventId"), c.Param("zoneId"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Zone converted successfully", zone, nil)
}

func (ctrl *controller) RenumberZone(c *gin.Context) {
	zone, err := ctrl.service.RenumberZone(c.Request.Context(), c.Param("eventId"), c.Param("zoneId"))
	if err != nil {
		respondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Zone renumbered successfully", zone, nil)
}

// ZoneGesture godoc
// @Summary      Drive a drag, resize, rotate or nudge gesture on a zone
// @Tags         zones
// @Accept       json
// @Produce      json
// @Param        eventId  path  string              true  "Event ID"
// @Param        zoneId   path  string              true  "Zone ID"
// @Param        request  body  ZoneGestureRequest  true  "Gesture step"
// @Success      200  {object}  response.StandardApiResponse{data=GestureResponse}
// @Router       /events/{eventId}/zones/{zoneId}/gesture [post]
func (ctrl *controller) ZoneGesture(c *gin.Context) {
	var req ZoneGestureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	gesture, err := ctrl.service.ZoneGesture(c.Request.Context(), c.Param("eventId"), c.Param("zoneId"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Gesture applied", gesture, nil)
}

func (ctrl *controller) ZoneGuides(c *gin.Context) {
	var req GuidesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	guides, err := ctrl.service.ZoneGuides(c.Request.Context(), c.Param("eventId"), c.Param("zoneId"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Guides computed", guides, nil)
}

// ============= SEATS =============

func (ctrl *controller) CreateSeat(c *gin.Context) {
	var req CreateSeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	seat, err := ctrl.service.CreateSeat(c.Request.Context(), c.Param("eventId"), c.Param("zoneId"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Seat created successfully", seat, nil)
}

// DeleteSeats godoc
// @Summary      Delete seats and renumber the rest
// @Tags         seats
// @Accept       json
// @Produce      json
// @Param        eventId  path  string              true  "Event ID"
// @Param        zoneId   path  string              true  "Zone ID"
// @Param        request  body  DeleteSeatsRequest  true  "Seat ids and strategy (LEAVE_GAP, REORDER_ROW, GLOBAL_RENUMBER)"
// @Success      200  {object}  response.StandardApiResponse{data=DeleteSeatsResponse}
// @Router       /events/{eventId}/zones/{zoneId}/seats [delete]
func (ctrl *controller) DeleteSeats(c *gin.Context) {
	var req DeleteSeatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	deleted, err := ctrl.service.DeleteSeats(c.Request.Context(), c.Param("eventId"), c.Param("zoneId"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Seats deleted successfully", deleted, nil)
}

func (ctrl *controller) UpdateSeat(c *gin.Context) {
	var req UpdateSeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	seat, err := ctrl.service.UpdateSeat(c.Request.Context(), c.Param("eventId"), c.Param("seatId"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Seat updated successfully", seat, nil)
}

func (ctrl *controller) SeatGesture(c *gin.Context) {
	var req SeatGestureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	gesture, err := ctrl.service.SeatGesture(c.Request.Context(), c.Param("eventId"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Gesture applied", gesture, nil)
}

// ============= DRAFTS =============

func (ctrl *controller) GetDraft(c *gin.Context) {
	draft, err := ctrl.service.GetDraft(c.Request.Context(), c.Param("eventId"))
	if err != nil {
		respondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Draft retrieved successfully", draft, nil)
}

func (ctrl *controller) RestoreDraft(c *gin.Context) {
	layoutResp, err := ctrl.service.RestoreDraft(c.Request.Context(), c.Param("eventId"))
	if err != nil {
		respondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Draft restored successfully", layoutResp, nil)
}

func (ctrl *controller) DiscardDraft(c *gin.Context) {
	if err := ctrl.service.DiscardDraft(c.Request.Context(), c.Param("eventId")); err != nil {
		respondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Draft discarded successfully", nil, nil)
}

// ============= TEMPLATES =============

// CreateTemplate godoc
// @Summary      Save a layout as a reusable template
// @Tags         templates
// @Accept       json
// @Produce      json
// @Param        request  body  CreateTemplateRequest  true  "Template"
// @Success      201  {object}  response.StandardApiResponse{data=TemplateResponse}
// @Router       /layout-templates [post]
func (ctrl *controller) CreateTemplate(c *gin.Context) {
	var req CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	template, err := ctrl.service.CreateTemplate(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Template created successfully", template, nil)
}

func (ctrl *controller) GetTemplates(c *gin.Context) {
	var filters TemplateFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	templates, err := ctrl.service.GetTemplates(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Templates retrieved successfully", templates, nil)
}

func (ctrl *controller) GetTemplate(c *gin.Context) {
	template, err := ctrl.service.GetTemplateByID(c.Request.Context(), c.Param("templateId"))
	if err != nil {
		respondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Template retrieved successfully", template, nil)
}

func (ctrl *controller) ApplyTemplate(c *gin.Context) {
	var req ApplyTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	layoutResp, err := ctrl.service.ApplyTemplate(c.Request.Context(), c.Param("eventId"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Template applied successfully", layoutResp, nil)
}

// ============= NUMBERING =============

// PreviewNumbering godoc
// @Summary      Preview seat labels for a grid
// @Tags         numbering
// @Accept       json
// @Produce      json
// @Param        request  body  NumberingPreviewRequest  true  "Grid size and numbering"
// @Success      200  {object}  response.StandardApiResponse{data=NumberingPreviewResponse}
// @Router       /numbering/preview [post]
func (ctrl *controller) PreviewNumbering(c *gin.Context) {
	var req NumberingPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	preview, err := ctrl.service.PreviewNumbering(req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Preview generated", preview, nil)
}

func (ctrl *controller) GetPresets(c *gin.Context) {
	response.RespondJSON(c, "success", http.StatusOK, "Presets retrieved successfully", ctrl.service.Presets(), nil)
}
