package entity

import (
	"github.com/shopspring/decimal"
)

// OrderItem is a priced snapshot of one catalog meal at order time.
type OrderItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	OrderID   string          `gorm:"size:36;index;not null" json:"orderId"`
	MealID    string          `gorm:"not null" json:"mealId"`
	MealName  string          `gorm:"not null" json:"mealName"` // denormalized จาก catalog
	Quantity  int             `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unitPrice"`
}

func (i OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
