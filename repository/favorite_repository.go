package repository

import (
	"context"
	"errors"

	"preorder/entity"
	"preorder/pkg/apperr"

	"gorm.io/gorm"
)

type FavoriteRepository struct{ DB *gorm.DB }

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository { return &FavoriteRepository{DB: db} }

func (r *FavoriteRepository) Create(ctx context.Context, f *entity.Favorite) error {
	err := r.DB.WithContext(ctx).Create(f).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperr.Conflict("meal %s already favorited", f.MealID)
	}
	if err != nil {
		return apperr.Persistence("create favorite", err)
	}
	return nil
}

// Delete ไม่ error ถ้าไม่มีแถวให้ลบ
func (r *FavoriteRepository) Delete(ctx context.Context, email, mealID string) error {
	err := r.DB.WithContext(ctx).
		Where("student_email = ? AND meal_id = ?", email, mealID).
		Delete(&entity.Favorite{}).Error
	if err != nil {
		return apperr.Persistence("delete favorite", err)
	}
	return nil
}

func (r *FavoriteRepository) ListMealIDs(ctx context.Context, email string) ([]string, error) {
	ids := make([]string, 0)
	err := r.DB.WithContext(ctx).Model(&entity.Favorite{}).
		Where("student_email = ?", email).
		Order("id ASC").
		Pluck("meal_id", &ids).Error
	if err != nil {
		return nil, apperr.Persistence("list favorites", err)
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}
