package model

// Order is a minimal view of an open order used by box-order statistics:
// an identifier plus its resolved items.
type Order struct {
	// ID is the order identifier.
	ID string `json:"id" example:"ORD-1001"`
	// Items are the resolved quantity lines of the order.
	Items []Item `json:"items"`
} // @name Order

// BoxUsageStat reports how many scanned orders would select a given box as
// their optimal single container.
type BoxUsageStat struct {
	// Box is the catalog box.
	Box Box `json:"box"`
	// OrderCount is the number of orders recommending this box.
	OrderCount int `json:"order_count" example:"42"`
} // @name BoxUsageStat
