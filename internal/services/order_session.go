package services

import (
	"errors"
	"fmt"

	"restaurant_pos_backend/internal/models"
)

var (
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
	ErrItemNotAvailable = errors.New("menu item is not available today")
	ErrEmptyOrder       = errors.New("order has no lines")
)

// OrderSession holds the order currently being built. It is an explicit value
// owned by whoever is driving one billing interaction; it is never shared
// process-wide, so two sessions cannot corrupt each other's lines.
//
// AddLine snapshots the menu item's name, price and tax percent at the moment
// the line is added. Menu edits made afterwards do not reach lines already on
// the session.
type OrderSession struct {
	lines []models.OrderLine
}

// NewOrderSession returns an empty session.
func NewOrderSession() *OrderSession {
	return &OrderSession{}
}

// AddLine appends one (menu item, quantity) pair to the session. The item must
// be flagged available for today and the quantity must be positive.
func (s *OrderSession) AddLine(item models.MenuItem, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: got %d for item %q", ErrInvalidQuantity, quantity, item.Name)
	}
	if !item.AvailableToday {
		return fmt.Errorf("%w: %q", ErrItemNotAvailable, item.Name)
	}

	s.lines = append(s.lines, models.OrderLine{
		MenuItemID: item.ID,
		Name:       item.Name,
		Price:      item.Price,
		GSTPercent: item.GSTPercent,
		Quantity:   quantity,
	})
	return nil
}

// Lines returns a copy of the session's order lines, in the order they were
// added.
func (s *OrderSession) Lines() []models.OrderLine {
	out := make([]models.OrderLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// Len returns the number of lines on the session.
func (s *OrderSession) Len() int {
	return len(s.lines)
}

// Clear drops all lines, returning the session to its empty state. Called
// after finalize and on logout.
func (s *OrderSession) Clear() {
	s.lines = s.lines[:0]
}
