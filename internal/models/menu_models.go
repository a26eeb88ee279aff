package models

// MenuItem represents one row of the restaurant menu.
// AvailableToday controls whether the item shows up in the order-entry picker
// for the current day; it is toggled independently of the other fields.
type MenuItem struct {
	ID             int64   `json:"id" db:"id"`
	Name           string  `json:"name" db:"name"`
	Category       *string `json:"category,omitempty" db:"category"`
	Price          float64 `json:"price" db:"price"`
	GSTPercent     float64 `json:"gst_percent" db:"gst_percent"`
	AvailableToday bool    `json:"available_today" db:"available_today"`
}
