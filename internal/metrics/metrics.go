package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "courtly_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "courtly_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BookingsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "courtly_bookings_created_total",
			Help: "Total number of bookings created",
		},
	)

	BookingTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "courtly_booking_transitions_total",
			Help: "Total number of booking status transitions",
		},
		[]string{"to"},
	)

	BookingConflictsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "courtly_booking_conflicts_total",
			Help: "Total number of rejected double-booking attempts",
		},
	)

	PaymentSessionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "courtly_payment_sessions_total",
			Help: "Total number of payment sessions created",
		},
		[]string{"status"},
	)

	PaymentNotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "courtly_payment_notifications_total",
			Help: "Total number of payment provider notifications processed",
		},
		[]string{"transaction_status", "result"},
	)

	ReviewsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "courtly_reviews_created_total",
			Help: "Total number of reviews created",
		},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "courtly_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "courtly_email_queue_length",
			Help: "Current length of email queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordBookingCreated() {
	BookingsCreatedTotal.Inc()
}

func RecordBookingTransition(to string) {
	BookingTransitionsTotal.WithLabelValues(to).Inc()
}

func RecordBookingConflict() {
	BookingConflictsTotal.Inc()
}

func RecordPaymentSession(status string) {
	PaymentSessionsTotal.WithLabelValues(status).Inc()
}

func RecordPaymentNotification(transactionStatus, result string) {
	PaymentNotificationsTotal.WithLabelValues(transactionStatus, result).Inc()
}

func RecordReviewCreated() {
	ReviewsCreatedTotal.Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}
