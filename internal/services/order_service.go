package services

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"restaurant_pos_backend/internal/models"
	"restaurant_pos_backend/internal/repositories"
	"restaurant_pos_backend/pkg/utils"
)

// --- Custom Service Errors for Orders ---
var (
	ErrOrderNotFound        = errors.New("order not found")
	ErrInvalidOrderType     = errors.New("invalid order type")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrInvalidPercentage    = errors.New("tax and discount percentages must not be negative")
)

// --- Data Transfer Objects (DTOs) ---

// FinalizeOrderLineRequest is one picked item on the order being finalized.
type FinalizeOrderLineRequest struct {
	MenuItemID int64 `json:"menu_item_id" binding:"required"`
	Quantity   int   `json:"quantity" binding:"required"`
}

// FinalizeOrderRequest carries everything the billing screen collects.
type FinalizeOrderRequest struct {
	OrderType       string                     `json:"order_type" binding:"required"`
	PaymentMethod   string                     `json:"payment_method" binding:"required"`
	GSTPercent      float64                    `json:"gst_percent"`
	DiscountPercent float64                    `json:"discount_percent"`
	Lines           []FinalizeOrderLineRequest `json:"lines" binding:"required,dive"`
}

// FinalizeOrderResponse returns the recorded order id alongside the bill.
type FinalizeOrderResponse struct {
	OrderID int64              `json:"order_id"`
	Bill    models.Bill        `json:"bill"`
	Lines   []models.OrderLine `json:"lines"`
}

// --- OrderService Interface ---
type OrderService interface {
	FinalizeOrder(req FinalizeOrderRequest) (*FinalizeOrderResponse, error)
	GetOrderByID(orderID int64) (*models.Order, error)
}

// --- orderService Implementation ---
type orderService struct {
	orderRepo repositories.OrderRepository
	menuRepo  repositories.MenuRepository
	receipts  ReceiptService
	db        *sql.DB // For managing transactions
}

// NewOrderService creates a new instance of OrderService.
func NewOrderService(
	or repositories.OrderRepository,
	mr repositories.MenuRepository,
	rs ReceiptService,
	db *sql.DB,
) OrderService {
	return &orderService{
		orderRepo: or,
		menuRepo:  mr,
		receipts:  rs,
		db:        db,
	}
}

// FinalizeOrder turns the collected lines into a bill and records the order.
// Lines are accumulated on an explicit OrderSession, which snapshots each
// item's price at add time. The order header and its item rows are written in
// a single transaction: a failure on any line insert rolls back the header so
// no orphaned order can survive a crash mid-finalize.
func (s *orderService) FinalizeOrder(req FinalizeOrderRequest) (*FinalizeOrderResponse, error) {
	if !models.IsValidOrderType(req.OrderType) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidOrderType, req.OrderType)
	}
	if !models.IsValidPaymentMethod(req.PaymentMethod) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, req.PaymentMethod)
	}
	if req.GSTPercent < 0 || req.DiscountPercent < 0 {
		return nil, ErrInvalidPercentage
	}
	if len(req.Lines) == 0 {
		return nil, ErrEmptyOrder
	}

	session := NewOrderSession()
	for _, lineReq := range req.Lines {
		item, err := s.menuRepo.GetMenuItemByID(lineReq.MenuItemID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, fmt.Errorf("%w: item ID %d", ErrMenuItemNotFound, lineReq.MenuItemID)
			}
			return nil, fmt.Errorf("failed to fetch menu item %d: %w", lineReq.MenuItemID, err)
		}
		if err := session.AddLine(*item, lineReq.Quantity); err != nil {
			return nil, err
		}
	}

	lines := session.Lines()
	bill := CalculateBill(lines, req.GSTPercent, req.DiscountPercent)

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to start database transaction: %w", err)
	}
	defer tx.Rollback()

	order := models.Order{
		OrderType:     req.OrderType,
		PaymentMethod: req.PaymentMethod,
		Subtotal:      bill.Subtotal,
		GSTAmount:     bill.GST,
		Discount:      bill.Discount,
		TotalAmount:   bill.Total,
		CreatedAt:     time.Now(),
	}

	orderID, err := s.orderRepo.CreateOrder(tx, &order)
	if err != nil {
		return nil, fmt.Errorf("failed to create order record: %w", err)
	}

	for _, line := range lines {
		item := models.OrderItem{
			OrderID:    orderID,
			MenuItemID: line.MenuItemID,
			Quantity:   line.Quantity,
		}
		if _, err := s.orderRepo.CreateOrderItem(tx, &item); err != nil {
			return nil, fmt.Errorf("failed to create order item (menu_item_id: %d): %w", line.MenuItemID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit order transaction: %w", err)
	}

	session.Clear()

	// Receipt generation is best-effort: a rendering failure must never undo
	// a committed order.
	if s.receipts != nil {
		if _, err := s.receipts.GenerateReceipt(orderID, lines, bill); err != nil {
			utils.LogError(err, fmt.Sprintf("FinalizeOrder: receipt generation failed for order %d", orderID))
		}
	}

	return &FinalizeOrderResponse{
		OrderID: orderID,
		Bill:    bill,
		Lines:   lines,
	}, nil
}

// GetOrderByID returns a recorded order with its item rows.
func (s *orderService) GetOrderByID(orderID int64) (*models.Order, error) {
	order, err := s.orderRepo.GetOrderByID(orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order by ID: %w", err)
	}

	items, err := s.orderRepo.GetOrderItemsByOrderID(orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order items for order %d: %w", orderID, err)
	}
	order.OrderItems = items

	return order, nil
}
