package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"preorder/entity"
	"preorder/pkg/apperr"
	"preorder/repository"
)

// Channel pushes a committed notification somewhere outside the database.
// Delivery is best-effort: failures are logged, never returned to the caller of Notify.
type Channel interface {
	Name() string
	Deliver(ctx context.Context, n *entity.Notification) error
}

type NotificationService struct {
	repo     *repository.NotificationRepository
	orders   *repository.OrderRepository
	channels []Channel
}

func NewNotificationService(repo *repository.NotificationRepository, orders *repository.OrderRepository, channels ...Channel) *NotificationService {
	return &NotificationService{repo: repo, orders: orders, channels: channels}
}

// Notify always creates a new unread notification; earlier ones for the same order are untouched.
func (s *NotificationService) Notify(ctx context.Context, orderID, studentEmail, message string) (*entity.Notification, error) {
	orderID = strings.TrimSpace(orderID)
	studentEmail = strings.ToLower(strings.TrimSpace(studentEmail))
	message = strings.TrimSpace(message)

	var missing []string
	if orderID == "" {
		missing = append(missing, "orderId")
	}
	if studentEmail == "" {
		missing = append(missing, "studentEmail")
	}
	if message == "" {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		return nil, apperr.Validation("%s is required", strings.Join(missing, ", "))
	}

	ok, err := s.orders.OrderExists(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("order %s not found", orderID)
	}

	n := &entity.Notification{
		OrderID:      orderID,
		StudentEmail: studentEmail,
		Message:      message,
		IsRead:       false,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}

	s.deliver(ctx, n)
	return n, nil
}

// NotifyReady sends the standard "ready for pickup" alert to the order's email.
func (s *NotificationService) NotifyReady(ctx context.Context, orderID string) (*entity.Notification, error) {
	o, err := s.orders.GetOrder(ctx, strings.TrimSpace(orderID))
	if err != nil {
		return nil, err
	}
	return s.Notify(ctx, o.ID, o.Email, ReadyMessage(o))
}

func ReadyMessage(o *entity.Order) string {
	short := o.ID
	if len(short) > 8 {
		short = short[:8]
	}
	return fmt.Sprintf("Hi %s, your order #%s is ready for pickup (%s). Total: RM%s",
		o.StudentName, short, o.PickupTime.Label(), o.TotalAmount.StringFixed(2))
}

func (s *NotificationService) deliver(ctx context.Context, n *entity.Notification) {
	for _, ch := range s.channels {
		if err := ch.Deliver(ctx, n); err != nil {
			log.Printf("notification %d via %s: %v", n.ID, ch.Name(), err)
			notificationsDispatched.WithLabelValues(ch.Name(), "error").Inc()
			continue
		}
		notificationsDispatched.WithLabelValues(ch.Name(), "ok").Inc()
	}
}

// ListForRecipient returns every notification for the email, newest first.
func (s *NotificationService) ListForRecipient(ctx context.Context, email string) ([]entity.Notification, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, apperr.Validation("email is required")
	}
	return s.repo.ListByEmail(ctx, email)
}

func (s *NotificationService) UnreadCount(ctx context.Context, email string) (int64, error) {
	return s.repo.CountUnread(ctx, strings.ToLower(strings.TrimSpace(email)))
}

// MarkRead is idempotent. A notification belonging to another recipient reads as not found.
func (s *NotificationService) MarkRead(ctx context.Context, id uint, email string) (*entity.Notification, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, apperr.Validation("email is required")
	}
	n, err := s.repo.Get(ctx, id, email)
	if err != nil {
		return nil, err
	}
	if !n.IsRead {
		if err := s.repo.MarkRead(ctx, id, email); err != nil {
			return nil, err
		}
		n.IsRead = true
	}
	return n, nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context, email string) (int64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return 0, apperr.Validation("email is required")
	}
	return s.repo.MarkAllRead(ctx, email)
}
