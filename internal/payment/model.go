package payment

// Notification is the asynchronous payment-status payload Midtrans posts to
// the webhook endpoint. OrderID carries the booking id.
type Notification struct {
	OrderID           string `json:"order_id" binding:"required"`
	TransactionStatus string `json:"transaction_status" binding:"required"`
	FraudStatus       string `json:"fraud_status"`
	TransactionID     string `json:"transaction_id"`
	PaymentType       string `json:"payment_type"`
}

type SimulateApproveRequest struct {
	OrderID string `json:"orderId" binding:"required"`
}

// Session is a hosted-payment session the client finishes out-of-band.
type Session struct {
	Token       string `json:"token"`
	RedirectURL string `json:"redirect_url"`
}

type Customer struct {
	Name  string
	Email string
	Phone string
}

type Item struct {
	ID    string
	Name  string
	Price int64
	Qty   int32
}
