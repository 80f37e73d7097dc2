package booking

import "context"

type Repository interface {
	// ListActiveForSlot returns pending and confirmed bookings for a court on
	// a date. Cancelled and completed bookings never block a slot.
	ListActiveForSlot(ctx context.Context, courtID int, date string) ([]Booking, error)

	// CreateIfFree inserts the booking only when no pending or confirmed
	// booking overlaps its slot, atomically, and returns ErrSlotTaken
	// otherwise.
	CreateIfFree(ctx context.Context, b *Booking) (*Booking, error)

	GetByID(ctx context.Context, id int) (*Booking, error)
	ListByUser(ctx context.Context, userID int) ([]Booking, error)
	ListByVenue(ctx context.Context, venueID int) ([]Booking, error)

	// UpdateStatus moves a booking to the target status only when its current
	// status is in fromStatuses; reports whether a row changed.
	UpdateStatus(ctx context.Context, id int, fromStatuses []string, to string) (bool, error)

	// ApplyNotification overwrites payment reconciliation fields in one
	// statement. Empty status/paymentStatus leave the stored value untouched.
	ApplyNotification(ctx context.Context, id int, status, paymentStatus, transactionID, paymentType string) error
}
