package request_models

type CreateGiftRequest struct {
	GuestID     string  `json:"guest_id"`
	Currency    string  `json:"currency" binding:"required,oneof=USD KHR"`
	Payment     string  `json:"payment" binding:"required,oneof=cash bank"`
	AmountUSD   float64 `json:"amount_usd"`
	AmountKHR   float64 `json:"amount_khr"`
	Description string  `json:"description"`
}

type CreateExpenseRequest struct {
	Name         string  `json:"name" binding:"required"`
	BudgetAmount float64 `json:"budget_amount"`
	ActualAmount float64 `json:"actual_amount"`
	Note         string  `json:"note"`
}
