package db_models

import (
	"time"

	"github.com/google/uuid"
)

// Schedule -> Shift -> Timeline is the event's run-of-show. Updates
// replace the whole subtree, they never merge.
type Schedule struct {
	BaseModel
	EventID uuid.UUID `gorm:"type:uuid;index"`
	Name    string
	Date    *time.Time
	Shifts  []Shift
}

type Shift struct {
	BaseModel
	ScheduleID uuid.UUID `gorm:"type:uuid;index"`
	Name       string
	Timelines  []Timeline
}

type Timeline struct {
	BaseModel
	ShiftID  uuid.UUID `gorm:"type:uuid;index"`
	Name     string
	NameKh   string
	StartsAt *time.Time
	EndsAt   *time.Time
	Position int `gorm:"default:0"`
}
