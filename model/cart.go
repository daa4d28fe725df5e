package model

// Cart is the redis-held pre-order basket. Order creation only clears it; the
// cart CRUD itself lives elsewhere.
type Cart struct {
	UserID string     `json:"user_id"`
	Items  []CartItem `json:"items"`
	Total  float64    `json:"total"`
}

type CartItem struct {
	ProductID string  `json:"product_id,omitempty"`
	ComboID   string  `json:"combo_id,omitempty"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}
