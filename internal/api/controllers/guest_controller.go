package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"phka/internal/models/request_models"
	"phka/internal/services"
	"phka/pkg/utils"
)

type GuestController struct {
	guestService services.GuestServiceInterface
}

func NewGuestController(guestService services.GuestServiceInterface) *GuestController {
	return &GuestController{guestService: guestService}
}

// CreateGuest godoc
// @Summary Add a guest to an event
// @Tags Guests
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body request_models.CreateGuestRequest true "Guest payload"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /events/{id}/guests [post]
func (g *GuestController) CreateGuest(c *gin.Context) {
	var req request_models.CreateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	guest, err := g.guestService.CreateGuest(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, guest, "Guest created")
}

func (g *GuestController) UpdateGuest(c *gin.Context) {
	var req request_models.UpdateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	guest, err := g.guestService.UpdateGuest(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, guest, "Guest updated")
}

func (g *GuestController) DeleteGuest(c *gin.Context) {
	if err := g.guestService.DeleteGuest(c.Request.Context(), c.GetString("user_id"), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Guest deleted")
}

func (g *GuestController) GetGuest(c *gin.Context) {
	guest, err := g.guestService.GetGuest(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, guest, "Guest retrieved")
}

func (g *GuestController) ListGuests(c *gin.Context) {
	guests, err := g.guestService.ListGuests(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, guests, "Guests retrieved")
}

func (g *GuestController) CreateTag(c *gin.Context) {
	var req request_models.LabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	tag, err := g.guestService.CreateTag(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, tag, "Tag created")
}

func (g *GuestController) ListTags(c *gin.Context) {
	tags, err := g.guestService.ListTags(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, tags, "Tags retrieved")
}

func (g *GuestController) DeleteTag(c *gin.Context) {
	if err := g.guestService.DeleteTag(c.Request.Context(), c.GetString("user_id"), c.Param("id"), c.Param("tagId")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Tag deleted")
}

func (g *GuestController) CreateGroup(c *gin.Context) {
	var req request_models.LabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	group, err := g.guestService.CreateGroup(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, group, "Group created")
}

func (g *GuestController) ListGroups(c *gin.Context) {
	groups, err := g.guestService.ListGroups(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, groups, "Groups retrieved")
}

func (g *GuestController) DeleteGroup(c *gin.Context) {
	if err := g.guestService.DeleteGroup(c.Request.Context(), c.GetString("user_id"), c.Param("id"), c.Param("groupId")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Group deleted")
}
