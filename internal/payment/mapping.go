package payment

import "github.com/BryanJericho/courtly-web-sub000/internal/booking"

// StatusUpdate is what a provider notification does to a booking. Empty
// fields leave the stored value untouched, which is how the "unchanged"
// rows of the mapping behave; it also means no notification can ever write
// payment status back to pending, so a stale redelivery cannot regress a
// paid booking.
type StatusUpdate struct {
	BookingStatus string
	PaymentStatus string
	Terminal      bool
}

// MapNotification converts a Midtrans transaction status into the internal
// (booking status, payment status) pair. The mapping is pure: it depends
// only on the payload, never on stored state, so replaying a notification
// is idempotent. A successful payment deliberately does not confirm the
// booking; the venue owner keeps the explicit approval step.
func MapNotification(transactionStatus, fraudStatus string) StatusUpdate {
	switch transactionStatus {
	case "capture":
		if fraudStatus == "accept" {
			return StatusUpdate{PaymentStatus: booking.PaymentPaid}
		}
		return StatusUpdate{}
	case "settlement":
		return StatusUpdate{PaymentStatus: booking.PaymentPaid}
	case "cancel", "deny", "expire":
		return StatusUpdate{
			BookingStatus: booking.StatusCancelled,
			PaymentStatus: booking.PaymentRefunded,
			Terminal:      true,
		}
	default:
		// "pending" and anything unrecognized change nothing.
		return StatusUpdate{}
	}
}
