package entity

import "time"

type Notification struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	OrderID      string    `gorm:"size:36;index;not null" json:"orderId"`
	Order        Order     `gorm:"constraint:OnUpdate:CASCADE;" json:"-"`
	StudentEmail string    `gorm:"index;not null" json:"studentEmail"`
	Message      string    `gorm:"type:text;not null" json:"message"`
	IsRead       bool      `gorm:"not null;default:false" json:"isRead"`
	CreatedAt    time.Time `gorm:"index" json:"createdAt"`
}
