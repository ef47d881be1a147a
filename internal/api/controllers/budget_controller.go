package controllers

import (
	"github.com/gin-gonic/gin"
	"tripplanner/internal/models/request_models"
	"tripplanner/internal/services"
	"tripplanner/pkg/utils"
)

type BudgetController struct {
	budgetService services.BudgetService
}

func NewBudgetController(budgetService services.BudgetService) *BudgetController {
	return &BudgetController{budgetService: budgetService}
}

// GetBudget godoc
// @Summary Budget breakdown of a trip
// @Tags Budget
// @Produce json
// @Security BearerAuth
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/budget/{tripId} [get]
func (b *BudgetController) GetBudget(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		return
	}
	tripId, ok := pathUUID(c, "tripId")
	if !ok {
		return
	}

	breakdown, err := b.budgetService.GetBudgetBreakdown(c.Request.Context(), userId, tripId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, breakdown, "Budget fetched successfully")
}

// UpdateBudget godoc
// @Summary Set the declared budget of a trip
// @Tags Budget
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tripId path string true "Trip ID"
// @Param request body request_models.UpdateBudgetRequest true "New budget"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/budget/{tripId} [put]
func (b *BudgetController) UpdateBudget(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		return
	}
	tripId, ok := pathUUID(c, "tripId")
	if !ok {
		return
	}
	var req request_models.UpdateBudgetRequest
	if !bindJSON(c, &req) {
		return
	}

	breakdown, err := b.budgetService.UpdateBudget(c.Request.Context(), userId, tripId, *req.Budget)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, breakdown, "Budget updated successfully")
}
