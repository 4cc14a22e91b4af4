package repository

import (
	"context"
	"errors"
	"fmt"

	"preorder/entity"
	"preorder/pkg/apperr"

	"gorm.io/gorm"
)

// UserRepository รับผิดชอบการคุยกับตาราง users ใน DB เท่านั้น
type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// หาผู้ใช้จาก email
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, notFoundOr(err, "user", email)
	}
	return &user, nil
}

// นับจำนวน user ที่มี email ซ้ำ
func (r *UserRepository) CountByEmail(ctx context.Context, email string) (int64, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&entity.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return 0, apperr.Persistence("count users", err)
	}
	return count, nil
}

func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	if err := r.DB.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Conflict("email %s already registered", user.Email)
		}
		return apperr.Persistence("create user", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var user entity.User
	if err := r.DB.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, notFoundOr(err, "user", fmt.Sprint(id))
	}
	return &user, nil
}

// notFoundOr แปลง gorm.ErrRecordNotFound เป็น apperr.ErrNotFound
func notFoundOr(err error, what, key string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("%s %s not found", what, key)
	}
	return apperr.Persistence("load "+what, err)
}
