package db_models

import "github.com/google/uuid"

type Plan struct {
	BaseModel
	Code        string `gorm:"uniqueIndex"` // e.g. "free", "standard", "premium"
	Name        string
	NameKh      string
	Description *string
	PriceMinor  int64  // 999 = $9.99
	Currency    string `gorm:"size:3;default:USD"`
	IsActive    bool   `gorm:"default:true"`

	LimitGuests      int `gorm:"default:0"` // 0 = unlimited
	LimitTemplates   int `gorm:"default:0"`
	LimitExportExcel int `gorm:"default:0"`
}

// UserPlan assigns a plan to a user. Override limits shadow the plan
// defaults when set (> 0 means override, 0 means inherit).
type UserPlan struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;index"`
	PlanID uuid.UUID `gorm:"type:uuid;index"`
	Plan   Plan

	LimitGuests      int `gorm:"default:0"`
	LimitTemplates   int `gorm:"default:0"`
	LimitExportExcel int `gorm:"default:0"`

	ExportsUsed int `gorm:"default:0"`
}

// EffectiveGuestLimit resolves the per-assignment override against the
// plan default. Zero means no limit.
func (up *UserPlan) EffectiveGuestLimit() int {
	if up.LimitGuests > 0 {
		return up.LimitGuests
	}
	return up.Plan.LimitGuests
}

func (up *UserPlan) EffectiveTemplateLimit() int {
	if up.LimitTemplates > 0 {
		return up.LimitTemplates
	}
	return up.Plan.LimitTemplates
}

func (up *UserPlan) EffectiveExportLimit() int {
	if up.LimitExportExcel > 0 {
		return up.LimitExportExcel
	}
	return up.Plan.LimitExportExcel
}
