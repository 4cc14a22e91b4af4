package entity

import "github.com/shopspring/decimal"

// Meal เป็นข้อมูลเมนูแบบ read-only จากไฟล์ catalog (ไม่ได้เก็บใน DB)
type Meal struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
	Calories int             `json:"calories"`
	ImageRef string          `json:"image"`
}
