package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"phka/internal/models/request_models"
	"phka/internal/services"
	"phka/pkg/utils"
)

type GiftController struct {
	giftService services.GiftServiceInterface
}

func NewGiftController(giftService services.GiftServiceInterface) *GiftController {
	return &GiftController{giftService: giftService}
}

// CreateGift godoc
// @Summary Record a gift
// @Description Records a cash or bank gift in USD or KHR against a guest
// @Tags Gifts
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body request_models.CreateGiftRequest true "Gift payload"
// @Success 200 {object} utils.APIResponse
// @Router /events/{id}/gifts [post]
func (g *GiftController) CreateGift(c *gin.Context) {
	var req request_models.CreateGiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	gift, err := g.giftService.CreateGift(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gift, "Gift recorded")
}

func (g *GiftController) DeleteGift(c *gin.Context) {
	if err := g.giftService.DeleteGift(c.Request.Context(), c.GetString("user_id"), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Gift deleted")
}

func (g *GiftController) ListGifts(c *gin.Context) {
	gifts, err := g.giftService.ListGifts(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gifts, "Gifts retrieved")
}

func (g *GiftController) CreateExpense(c *gin.Context) {
	var req request_models.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	expense, err := g.giftService.CreateExpense(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, expense, "Expense created")
}

func (g *GiftController) UpdateExpense(c *gin.Context) {
	var req request_models.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	expense, err := g.giftService.UpdateExpense(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, expense, "Expense updated")
}

func (g *GiftController) DeleteExpense(c *gin.Context) {
	if err := g.giftService.DeleteExpense(c.Request.Context(), c.GetString("user_id"), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Expense deleted")
}

func (g *GiftController) ListExpenses(c *gin.Context) {
	expenses, err := g.giftService.ListExpenses(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, expenses, "Expenses retrieved")
}
