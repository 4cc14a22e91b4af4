// services/order_transitions.go
package services

import (
	"context"
	"strings"

	"preorder/entity"
	"preorder/pkg/apperr"
)

// SetStatus moves an order along the status graph. The write is conditional on the status
// read here, so two racing requests cannot both apply: the loser gets ErrInvalidTransition
// when its target is illegal from the winner's status, otherwise ErrConflict. Nothing is retried.
func (s *OrderService) SetStatus(ctx context.Context, orderID, status string) (*entity.Order, error) {
	next, err := entity.ParseOrderStatus(strings.ToLower(strings.TrimSpace(status)))
	if err != nil {
		statusTransitions.WithLabelValues("unknown", "validation").Inc()
		return nil, apperr.Validation("%v", err)
	}

	o, err := s.setStatus(ctx, strings.TrimSpace(orderID), next)
	statusTransitions.WithLabelValues(next.String(), outcomeOf(err)).Inc()
	return o, err
}

func (s *OrderService) setStatus(ctx context.Context, orderID string, next entity.OrderStatus) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !o.Status.CanTransitionTo(next) {
		return nil, apperr.InvalidTransition("order %s cannot move from %s to %s", o.ID, o.Status, next)
	}

	affected, err := s.Repo.UpdateStatusGuard(ctx, o.ID, o.Status, next)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		// มีคนเปลี่ยนสถานะไปก่อนระหว่างที่เราอ่าน
		cur, err := s.Repo.GetOrder(ctx, o.ID)
		if err != nil {
			return nil, err
		}
		if !cur.Status.CanTransitionTo(next) {
			return nil, apperr.InvalidTransition("order %s cannot move from %s to %s", cur.ID, cur.Status, next)
		}
		return nil, apperr.Conflict("order %s changed to %s concurrently", cur.ID, cur.Status)
	}

	return s.Repo.GetOrder(ctx, o.ID)
}
