package model

// PaymentOrder is a gateway order created by the backend ahead of checkout.
// Amount is in the currency's minor unit, as the gateway reports it.
type PaymentOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// PaymentVerification carries the gateway's signed checkout result back to
// the backend for verification.
type PaymentVerification struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
}
