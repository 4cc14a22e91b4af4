package configs

import (
	"log"

	"preorder/entity"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// สร้าง admin ครั้งแรก
func SeedAdmin(db *gorm.DB) error {
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	if err := db.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Email:    email,
		Password: string(hash),
		Name:     "Canteen Admin",
		Role:     entity.RoleAdmin,
	}
	return db.Create(&admin).Error
}
