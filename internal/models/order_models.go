package models

import "time"

// Order types accepted by the billing surface.
const (
	OrderTypeDineIn   = "Dine-In"
	OrderTypeTakeaway = "Takeaway"
)

// Payment methods accepted by the billing surface.
const (
	PaymentMethodCash = "Cash"
	PaymentMethodCard = "Card"
	PaymentMethodUPI  = "UPI"
)

// OrderLine is one (menu item, quantity) pair of the order currently being
// built. Name, price and tax percent are snapshots taken when the line was
// added; later menu edits do not change a line already on the order.
type OrderLine struct {
	MenuItemID int64   `json:"menu_item_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	GSTPercent float64 `json:"gst_percent"`
	Quantity   int     `json:"quantity"`
}

// Bill is the four-amount breakdown derived from a set of order lines and the
// tax/discount percentages. All fields are rounded to 2 decimal places; Total
// is rounded independently from the unrounded components, so Total may differ
// from Subtotal+GST-Discount by a cent at the rounding boundary.
type Bill struct {
	Subtotal float64 `json:"subtotal"`
	GST      float64 `json:"gst"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
}

// Order is a finalized bill persisted to the store. Orders are immutable once
// recorded; no edit or cancel operation exists.
type Order struct {
	ID            int64       `json:"id" db:"id"`
	OrderType     string      `json:"order_type" db:"order_type"`
	PaymentMethod string      `json:"payment_method" db:"payment_method"`
	Subtotal      float64     `json:"subtotal" db:"subtotal"`
	GSTAmount     float64     `json:"gst_amount" db:"gst_amount"`
	Discount      float64     `json:"discount" db:"discount"`
	TotalAmount   float64     `json:"total_amount" db:"total_amount"`
	CreatedAt     time.Time   `json:"created_at" db:"created_at"`
	OrderItems    []OrderItem `json:"order_items,omitempty"`
}

// OrderItem is the persisted link row between an order and a menu item.
// One row per distinct order line; never mutated after creation.
type OrderItem struct {
	ID         int64  `json:"id" db:"id"`
	OrderID    int64  `json:"order_id" db:"order_id"`
	MenuItemID int64  `json:"item_id" db:"item_id"`
	Quantity   int    `json:"quantity" db:"quantity"`
	ItemName   string `json:"item_name,omitempty"` // Joined from menu for responses

	// Joined from menu for receipt rendering
	UnitPrice float64 `json:"unit_price,omitempty"`
}

// IsValidOrderType reports whether t is one of the accepted order types.
func IsValidOrderType(t string) bool {
	return t == OrderTypeDineIn || t == OrderTypeTakeaway
}

// IsValidPaymentMethod reports whether m is one of the accepted payment methods.
func IsValidPaymentMethod(m string) bool {
	return m == PaymentMethodCash || m == PaymentMethodCard || m == PaymentMethodUPI
}
