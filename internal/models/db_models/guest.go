package db_models

import (
	"time"

	"github.com/google/uuid"
)

type RSVPStatus string

const (
	RSVPConfirmed RSVPStatus = "confirmed"
	RSVPPending   RSVPStatus = "pending"
	RSVPRejected  RSVPStatus = "rejected"
)

type Guest struct {
	BaseModel
	EventID   uuid.UUID `gorm:"type:uuid;index"`
	Name      string
	Phone     string
	Status    RSVPStatus `gorm:"type:varchar(16);default:pending"`
	HeadCount int        `gorm:"default:1"`
	Wishing   string
	InvitedAt *time.Time

	Tags   []Tag   `gorm:"many2many:guest_tags"`
	Groups []Group `gorm:"many2many:guest_groups"`
}

// Tag and Group are event-scoped guest labels, bilingual.
type Tag struct {
	BaseModel
	EventID uuid.UUID `gorm:"type:uuid;index"`
	NameEn  string
	NameKh  string
}

type Group struct {
	BaseModel
	EventID uuid.UUID `gorm:"type:uuid;index"`
	NameEn  string
	NameKh  string
}
