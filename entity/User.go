package entity

import (
	"gorm.io/gorm"
)

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

type User struct {
	gorm.Model
	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	Password  string `json:"-"` // bcrypt hash
	Name      string `json:"name"`
	StudentID string `json:"studentId"`
	Role      string `gorm:"not null;default:student" json:"role"`

	Orders []Order `gorm:"foreignKey:OwnerID" json:"-"`
}
