package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "preorder_orders_submitted_total",
		Help: "Order submissions by outcome",
	}, []string{"outcome"})

	statusTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "preorder_status_transitions_total",
		Help: "Order status change requests by target status and outcome",
	}, []string{"to", "outcome"})

	notificationsDispatched = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "preorder_notifications_total",
		Help: "Notification deliveries by channel and outcome",
	}, []string{"channel", "outcome"})
)
