package db_models

import (
	"time"

	"github.com/google/uuid"
)

type EventStatus string

const (
	EventStatusDraft     EventStatus = "draft"
	EventStatusPublished EventStatus = "published"
	EventStatusArchived  EventStatus = "archived"
)

type Event struct {
	BaseModel
	UserID   uuid.UUID `gorm:"type:uuid;index"`
	Name     string
	Type     string // "wedding" | "birthday" | ...
	Status   EventStatus `gorm:"type:varchar(16);default:draft"`
	Location string
	Slug     string `gorm:"uniqueIndex"`
	StartsAt *time.Time
	EndsAt   *time.Time

	Schedules      []Schedule
	Guests         []Guest
	Tags           []Tag
	Groups         []Group
	Gifts          []Gift
	Expenses       []Expense
	EventTemplates []EventTemplate
}
