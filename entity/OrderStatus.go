package entity

import "fmt"

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

// AllStatuses in lifecycle order.
var AllStatuses = []OrderStatus{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled}

// transitions maps a status to the set of statuses it may move to.
// completed and cancelled are terminal.
var transitions = map[OrderStatus]map[OrderStatus]bool{
	StatusPending:   {StatusConfirmed: true, StatusCancelled: true},
	StatusConfirmed: {StatusCompleted: true, StatusCancelled: true},
	StatusCompleted: {},
	StatusCancelled: {},
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	st := OrderStatus(s)
	if _, ok := transitions[st]; !ok {
		return "", fmt.Errorf("unknown order status %q", s)
	}
	return st, nil
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	return transitions[s][next]
}

func (s OrderStatus) IsTerminal() bool {
	next, ok := transitions[s]
	return ok && len(next) == 0
}

func (s OrderStatus) String() string {
	return string(s)
}
