package request_models

type UpdateBudgetRequest struct {
	Budget *float64 `json:"budget" binding:"required"`
}
