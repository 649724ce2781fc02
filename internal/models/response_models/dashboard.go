package response_models

import "time"

// EventDashboard is the per-event rollup of guests, gifts and expenses.
type EventDashboard struct {
	EventID   string `json:"event_id"`
	EventName string `json:"event_name"`

	Guests   GuestStats   `json:"guests"`
	Gifts    GiftStats    `json:"gifts"`
	Expenses ExpenseStats `json:"expenses"`

	// NetAmountUSD = gift income (USD equivalent) - actual expenses.
	NetAmountUSD float64 `json:"net_amount_usd"`
}

type GuestStats struct {
	Total     int64 `json:"total"`
	Confirmed int64 `json:"confirmed"`
	Pending   int64 `json:"pending"`
	Rejected  int64 `json:"rejected"`
	HeadCount int64 `json:"head_count"`
	Invited   int64 `json:"invited"`
}

type GiftStats struct {
	TotalIncomeUSD float64 `json:"total_income_usd"`
	TotalIncomeKHR float64 `json:"total_income_khr"`
	// TotalGiftIncome is the combined USD-equivalent of both currencies.
	TotalGiftIncome float64 `json:"total_gift_income"`
	CountUSD        int64   `json:"count_usd"`
	CountKHR        int64   `json:"count_khr"`
}

type ExpenseStats struct {
	TotalBudget float64 `json:"total_budget"`
	TotalActual float64 `json:"total_actual"`
}

// AdminDashboard aggregates across all tenants.
type AdminDashboard struct {
	Range         TimeRange     `json:"range"`
	TotalUsers    int64         `json:"total_users"`
	NewUsers      int64         `json:"new_users"`
	UserGrowthPct float64       `json:"user_growth_pct"`
	TotalEvents   int64         `json:"total_events"`
	EventsByState map[string]int64 `json:"events_by_status"`
	PlanMix       []PlanMixItem `json:"plan_mix"`
}

type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type PlanMixItem struct {
	PlanCode string  `json:"plan_code"`
	PlanName string  `json:"plan_name"`
	Count    int64   `json:"count"`
	Percent  float64 `json:"percent"`
}
