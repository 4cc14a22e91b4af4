package repository

import (
	"context"
	"fmt"

	"preorder/entity"
	"preorder/pkg/apperr"

	"gorm.io/gorm"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db}
}

// Create always inserts; notifications are never merged.
func (r *NotificationRepository) Create(ctx context.Context, n *entity.Notification) error {
	if err := r.db.WithContext(ctx).Omit("Order").Create(n).Error; err != nil {
		return apperr.Persistence("create notification", err)
	}
	return nil
}

// ใหม่สุดก่อน
func (r *NotificationRepository) ListByEmail(ctx context.Context, email string) ([]entity.Notification, error) {
	var out []entity.Notification
	err := r.db.WithContext(ctx).
		Where("student_email = ?", email).
		Order("created_at DESC").Order("id DESC").
		Find(&out).Error
	if err != nil {
		return nil, apperr.Persistence("list notifications", err)
	}
	return out, nil
}

func (r *NotificationRepository) Get(ctx context.Context, id uint, email string) (*entity.Notification, error) {
	var n entity.Notification
	if err := r.db.WithContext(ctx).Where("id = ? AND student_email = ?", id, email).First(&n).Error; err != nil {
		return nil, notFoundOr(err, "notification", fmt.Sprint(id))
	}
	return &n, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id uint, email string) error {
	err := r.db.WithContext(ctx).Model(&entity.Notification{}).
		Where("id = ? AND student_email = ?", id, email).
		Update("is_read", true).Error
	if err != nil {
		return apperr.Persistence("mark notification read", err)
	}
	return nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, email string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&entity.Notification{}).
		Where("student_email = ? AND is_read = ?", email, false).
		Update("is_read", true)
	if res.Error != nil {
		return 0, apperr.Persistence("mark notifications read", res.Error)
	}
	return res.RowsAffected, nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context, email string) (int64, error) {
	var cnt int64
	if err := r.db.WithContext(ctx).Model(&entity.Notification{}).
		Where("student_email = ? AND is_read = ?", email, false).
		Count(&cnt).Error; err != nil {
		return 0, apperr.Persistence("count unread notifications", err)
	}
	return cnt, nil
}
