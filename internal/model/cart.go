package model

// CartItem is a single cart line: one product with its quantity.
// A cart holds at most one line per product ID and quantities stay >= 1;
// lines are removed, never zeroed.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}
