package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Template is a reusable invitation design. UniqueName keys the renderer
// registry on the client side.
type Template struct {
	BaseModel
	Name          string
	UniqueName    string `gorm:"uniqueIndex"`
	Thumbnail     string
	IsActive      bool           `gorm:"default:true"`
	DefaultConfig datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
}

// EventTemplate binds a Template to an Event with an optional config
// override. Exactly one row per event should carry IsDefault.
type EventTemplate struct {
	BaseModel
	EventID    uuid.UUID `gorm:"type:uuid;index"`
	TemplateID uuid.UUID `gorm:"type:uuid;index"`
	Template   Template
	IsDefault  bool           `gorm:"default:false"`
	Config     datatypes.JSON `gorm:"type:jsonb"`
}
