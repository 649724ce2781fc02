package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"phka/internal/models/request_models"
	"phka/internal/services"
	"phka/pkg/utils"
)

type TemplateController struct {
	templateService services.TemplateServiceInterface
}

func NewTemplateController(templateService services.TemplateServiceInterface) *TemplateController {
	return &TemplateController{templateService: templateService}
}

// CreateTemplate godoc
// @Summary Register an invitation template
// @Tags Templates
// @Accept json
// @Produce json
// @Param request body request_models.CreateTemplateRequest true "Template payload"
// @Success 200 {object} utils.APIResponse
// @Router /admin/templates [post]
func (t *TemplateController) CreateTemplate(c *gin.Context) {
	var req request_models.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	template, err := t.templateService.CreateTemplate(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, template, "Template created")
}

func (t *TemplateController) GetAllTemplates(c *gin.Context) {
	templates, err := t.templateService.GetAllTemplates(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, templates, "Templates retrieved")
}

func (t *TemplateController) DeleteTemplate(c *gin.Context) {
	if err := t.templateService.DeleteTemplate(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Template deleted")
}

// AttachTemplate binds a catalog template to an event, optionally with
// a config override and the default flag.
func (t *TemplateController) AttachTemplate(c *gin.Context) {
	var req request_models.AttachTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	et, err := t.templateService.AttachToEvent(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, et, "Template attached")
}

func (t *TemplateController) SetDefaultTemplate(c *gin.Context) {
	err := t.templateService.SetDefault(c.Request.Context(), c.GetString("user_id"), c.Param("id"), c.Param("bindingId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Default template updated")
}

// Preview godoc
// @Summary Resolve a renderable invitation preview
// @Description Accepts slug, event_id+template_id, or template_id alone
// @Tags Templates
// @Produce json
// @Param slug query string false "Public invite slug"
// @Param event_id query string false "Event ID"
// @Param template_id query string false "Template ID"
// @Success 200 {object} utils.APIResponse
// @Router /preview [get]
func (t *TemplateController) Preview(c *gin.Context) {
	preview, err := t.templateService.ResolvePreview(
		c.Request.Context(),
		c.Query("slug"),
		c.Query("event_id"),
		c.Query("template_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, preview, "Preview resolved")
}
