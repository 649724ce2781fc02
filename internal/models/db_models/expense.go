package db_models

import "github.com/google/uuid"

type Expense struct {
	BaseModel
	EventID      uuid.UUID `gorm:"type:uuid;index"`
	Name         string
	BudgetAmount float64 `gorm:"default:0"`
	ActualAmount float64 `gorm:"default:0"`
	Note         string
}
