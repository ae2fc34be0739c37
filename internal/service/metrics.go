package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var paymentNotifications = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "storefront",
	Name:      "payment_notifications_total",
	Help:      "Payment gateway notifications processed, by source and outcome.",
}, []string{"source", "outcome"})

var expiredTransactions = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "storefront",
	Name:      "expired_transactions_total",
	Help:      "Pending transactions canceled by the expiry job.",
})
