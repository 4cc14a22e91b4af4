package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PickupTime is the pickup slot label chosen at checkout.
type PickupTime string

const (
	PickupLunch PickupTime = "lunch"
	PickupBreak PickupTime = "break"
)

func (p PickupTime) Valid() bool {
	return p == PickupLunch || p == PickupBreak
}

// Label ใช้แสดงผลในใบเสร็จ/ข้อความแจ้งเตือน
func (p PickupTime) Label() string {
	if p == PickupBreak {
		return "Break Time"
	}
	return "Lunch Time"
}

type Order struct {
	ID          string          `gorm:"primaryKey;size:36" json:"id"`
	StudentName string          `gorm:"not null" json:"studentName"`
	StudentID   string          `gorm:"index;not null" json:"studentId"`
	Email       string          `gorm:"index;not null" json:"email"`
	OrderDate   string          `gorm:"size:10;not null" json:"orderDate"` // YYYY-MM-DD
	PickupTime  PickupTime      `gorm:"size:10;not null;default:lunch" json:"pickupTime"`
	Notes       string          `json:"notes"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"totalAmount"`
	Status      OrderStatus     `gorm:"size:16;index;not null;default:pending" json:"status"`

	// ผูกกับผู้ใช้ที่ login (ถ้ามี)
	OwnerID *uint `gorm:"index" json:"ownerId,omitempty"`

	// ชื่อ/รหัส/อีเมลตัวพิมพ์เล็ก สำหรับค้นหาฝั่ง admin (SQLite LOWER() ไม่รองรับ unicode)
	SearchKey string `gorm:"type:text" json:"-"`

	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Items []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}

// BeforeCreate assigns the order id when the caller did not and fills SearchKey.
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	o.SearchKey = OrderSearchKey(o.StudentName, o.StudentID, o.Email)
	return nil
}

// OrderSearchKey joins the searchable fields, lowercased, one per line so a term
// never matches across two fields.
func OrderSearchKey(fields ...string) string {
	return strings.ToLower(strings.Join(fields, "\n"))
}

// ItemsTotal sums price x quantity over the loaded items.
func (o *Order) ItemsTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range o.Items {
		sum = sum.Add(it.LineTotal())
	}
	return sum
}
