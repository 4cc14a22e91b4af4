package entity

import "time"

type Favorite struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	StudentEmail string    `gorm:"uniqueIndex:idx_favorite_email_meal;not null" json:"studentEmail"`
	MealID       string    `gorm:"uniqueIndex:idx_favorite_email_meal;not null" json:"mealId"`
	CreatedAt    time.Time `json:"createdAt"`
}
