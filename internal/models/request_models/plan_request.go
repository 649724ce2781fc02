package request_models

type CreatePlanRequest struct {
	Code             string `json:"code" binding:"required"`
	Name             string `json:"name" binding:"required"`
	NameKh           string `json:"name_kh"`
	Description      string `json:"description"`
	PriceMinor       int64  `json:"price_minor"`
	Currency         string `json:"currency"`
	LimitGuests      int    `json:"limit_guests"`
	LimitTemplates   int    `json:"limit_templates"`
	LimitExportExcel int    `json:"limit_export_excel"`
}

type AssignPlanRequest struct {
	UserID string `json:"user_id" binding:"required"`
	PlanID string `json:"plan_id" binding:"required"`

	// Optional per-assignment overrides; zero inherits the plan default.
	LimitGuests      int `json:"limit_guests"`
	LimitTemplates   int `json:"limit_templates"`
	LimitExportExcel int `json:"limit_export_excel"`
}
