package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Seller represents a marketplace seller with its commission rate.
type Seller struct {
	ID                uint            `json:"id" gorm:"primaryKey"`
	Name              string          `json:"name" gorm:"size:255;not null;index"`
	CommissionPercent decimal.Decimal `json:"commission_percent" gorm:"type:decimal(5,2);not null"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`

	// Relations
	Products []Product `json:"products,omitempty" gorm:"foreignKey:SellerID"`
}
