package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"phka/internal/models/request_models"
	"phka/internal/services"
	"phka/pkg/utils"
)

type PlanController struct {
	planService services.PlanServiceInterface
}

func NewPlanController(planService services.PlanServiceInterface) *PlanController {
	return &PlanController{planService: planService}
}

// CreatePlan godoc
// @Summary Create a subscription plan
// @Tags Plans
// @Accept json
// @Produce json
// @Param request body request_models.CreatePlanRequest true "Plan payload"
// @Success 200 {object} utils.APIResponse
// @Router /admin/plans [post]
func (p *PlanController) CreatePlan(c *gin.Context) {
	var req request_models.CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plan, err := p.planService.CreatePlan(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Plan created")
}

func (p *PlanController) GetAllPlans(c *gin.Context) {
	plans, err := p.planService.GetAllPlans(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plans, "Plans retrieved")
}

func (p *PlanController) GetPlanById(c *gin.Context) {
	plan, err := p.planService.GetPlanInfoById(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Plan retrieved")
}

func (p *PlanController) DeletePlan(c *gin.Context) {
	if err := p.planService.DeletePlan(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Plan deleted")
}

// AssignPlan gives a user a plan, optionally with per-user limit
// overrides.
func (p *PlanController) AssignPlan(c *gin.Context) {
	var req request_models.AssignPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userPlan, err := p.planService.AssignPlan(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, userPlan, "Plan assigned")
}
