package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"phka/internal/models/request_models"
	"phka/internal/services"
	"phka/pkg/utils"
)

type EventController struct {
	eventService services.EventServiceInterface
}

func NewEventController(eventService services.EventServiceInterface) *EventController {
	return &EventController{eventService: eventService}
}

// CreateEvent godoc
// @Summary Create an event
// @Tags Events
// @Accept json
// @Produce json
// @Param request body request_models.CreateEventRequest true "Event payload"
// @Success 200 {object} utils.APIResponse
// @Router /events [post]
func (e *EventController) CreateEvent(c *gin.Context) {
	var req request_models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	event, err := e.eventService.CreateEvent(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, event, "Event created")
}

func (e *EventController) UpdateEvent(c *gin.Context) {
	var req request_models.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	event, err := e.eventService.UpdateEvent(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, event, "Event updated")
}

// DeleteEvent removes the event and everything scoped under it.
func (e *EventController) DeleteEvent(c *gin.Context) {
	if err := e.eventService.DeleteEvent(c.Request.Context(), c.GetString("user_id"), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Event deleted")
}

func (e *EventController) GetEvent(c *gin.Context) {
	event, err := e.eventService.GetEvent(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, event, "Event retrieved")
}

func (e *EventController) ListEvents(c *gin.Context) {
	events, err := e.eventService.ListEvents(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, events, "Events retrieved")
}

// InviteQRCode godoc
// @Summary Invitation QR code
// @Description Returns a PNG QR code pointing at the public invite link
// @Tags Events
// @Produce png
// @Param id path string true "Event ID"
// @Success 200 {file} binary
// @Router /events/{id}/qrcode [get]
func (e *EventController) InviteQRCode(c *gin.Context) {
	png, err := e.eventService.InviteQRCode(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

func (e *EventController) CreateSchedule(c *gin.Context) {
	var req request_models.UpsertScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	schedule, err := e.eventService.CreateSchedule(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, schedule, "Schedule created")
}

// ReplaceSchedule swaps the whole shift/timeline tree in one go.
func (e *EventController) ReplaceSchedule(c *gin.Context) {
	var req request_models.UpsertScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	schedule, err := e.eventService.ReplaceSchedule(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, schedule, "Schedule updated")
}

func (e *EventController) ListSchedules(c *gin.Context) {
	schedules, err := e.eventService.ListSchedules(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, schedules, "Schedules retrieved")
}

func (e *EventController) DeleteSchedule(c *gin.Context) {
	if err := e.eventService.DeleteSchedule(c.Request.Context(), c.GetString("user_id"), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Schedule deleted")
}
