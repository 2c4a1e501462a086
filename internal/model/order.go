package model

import "time"

// OrderStatus enumerates order lifecycle states.
type OrderStatus string

const (
	// OrderPending is a freshly placed, unprocessed order.
	OrderPending OrderStatus = "pending"
	// OrderProcessing is an order being prepared.
	OrderProcessing OrderStatus = "processing"
	// OrderOutForDelivery is an order handed to the courier.
	OrderOutForDelivery OrderStatus = "out_for_delivery"
	// OrderDelivered is a completed order.
	OrderDelivered OrderStatus = "delivered"
	// OrderCancelled is a cancelled order.
	OrderCancelled OrderStatus = "cancelled"
)

// OrderLine is one purchased product with its quantity.
type OrderLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Order represents a placed order as the backend reports it.
type Order struct {
	ID            string      `json:"id"`
	CustomerID    string      `json:"customerId"`
	CustomerName  string      `json:"customerName"`
	CustomerEmail string      `json:"customerEmail"`
	CustomerPhone string      `json:"customerPhone"`
	Address       string      `json:"address"`
	Lines         []OrderLine `json:"products"`
	TotalAmount   float64     `json:"totalAmount"`
	Status        OrderStatus `json:"status"`
	CreatedAt     time.Time   `json:"createdAt"`
}
