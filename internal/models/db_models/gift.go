package db_models

import "github.com/google/uuid"

type CurrencyType string

const (
	CurrencyUSD CurrencyType = "USD"
	CurrencyKHR CurrencyType = "KHR"
)

type PaymentType string

const (
	PaymentCash PaymentType = "cash"
	PaymentBank PaymentType = "bank"
)

// Gift amounts are stored per currency, never mixed into one column.
type Gift struct {
	BaseModel
	EventID     uuid.UUID  `gorm:"type:uuid;index"`
	GuestID     *uuid.UUID `gorm:"type:uuid;index"`
	Guest       *Guest
	Currency    CurrencyType `gorm:"type:varchar(3);default:USD"`
	Payment     PaymentType  `gorm:"type:varchar(8);default:cash"`
	AmountUSD   float64      `gorm:"default:0"`
	AmountKHR   float64      `gorm:"default:0"`
	Description string
}
