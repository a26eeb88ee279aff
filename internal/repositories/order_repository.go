package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"restaurant_pos_backend/internal/models"
)

// CreatedAtLayout is the storage format for orders.created_at. Times are
// stored in the process's local zone so that "today" matches the restaurant's
// calendar day.
const CreatedAtLayout = "2006-01-02 15:04:05"

// OrderRepository defines the interface for order-related database operations.
// Orders are write-once: there are no update or delete methods.
type OrderRepository interface {
	CreateOrder(executor SQLExecutor, order *models.Order) (int64, error)
	CreateOrderItem(executor SQLExecutor, item *models.OrderItem) (int64, error)
	GetOrderByID(orderID int64) (*models.Order, error)
	GetOrderItemsByOrderID(orderID int64) ([]models.OrderItem, error)
	GetDailySalesTotal(day time.Time) (float64, error)
	GetDailyOrderCount(day time.Time) (int, error)
}

type orderRepository struct {
	db *sql.DB
}

// NewOrderRepository creates a new instance of OrderRepository.
func NewOrderRepository(db *sql.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) CreateOrder(executor SQLExecutor, order *models.Order) (int64, error) {
	query := `INSERT INTO orders (order_type, payment_method, subtotal, gst_amount, discount, total_amount, created_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?)`

	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}

	result, err := executor.Exec(query,
		order.OrderType, order.PaymentMethod,
		order.Subtotal, order.GSTAmount, order.Discount, order.TotalAmount,
		order.CreatedAt.Format(CreatedAtLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("%w: creating order: %v", ErrDatabaseError, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: reading new order id: %v", ErrDatabaseError, err)
	}
	order.ID = id
	return id, nil
}

func (r *orderRepository) CreateOrderItem(executor SQLExecutor, item *models.OrderItem) (int64, error) {
	query := `INSERT INTO order_items (order_id, item_id, quantity) VALUES (?, ?, ?)`
	result, err := executor.Exec(query, item.OrderID, item.MenuItemID, item.Quantity)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, fmt.Errorf("%w: order item references missing order or menu row", ErrForeignKeyViolation)
		}
		return 0, fmt.Errorf("%w: creating order item: %v", ErrDatabaseError, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: reading new order item id: %v", ErrDatabaseError, err)
	}
	item.ID = id
	return id, nil
}

func (r *orderRepository) GetOrderByID(orderID int64) (*models.Order, error) {
	order := &models.Order{}
	var createdAt string
	query := `SELECT id, order_type, payment_method, subtotal, gst_amount, discount, total_amount, created_at
	          FROM orders
	          WHERE id = ?`
	err := r.db.QueryRow(query, orderID).Scan(
		&order.ID, &order.OrderType, &order.PaymentMethod,
		&order.Subtotal, &order.GSTAmount, &order.Discount, &order.TotalAmount,
		&createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting order by ID %d: %v", ErrDatabaseError, orderID, err)
	}

	order.CreatedAt, err = time.ParseInLocation(CreatedAtLayout, createdAt, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing created_at for order ID %d: %v", ErrDatabaseError, orderID, err)
	}
	return order, nil
}

func (r *orderRepository) GetOrderItemsByOrderID(orderID int64) ([]models.OrderItem, error) {
	items := []models.OrderItem{}
	query := `SELECT oi.id, oi.order_id, oi.item_id, oi.quantity, m.name, m.price
	          FROM order_items oi
	          JOIN menu m ON oi.item_id = m.id
	          WHERE oi.order_id = ?
	          ORDER BY oi.id`

	rows, err := r.db.Query(query, orderID)
	if err != nil {
		return nil, fmt.Errorf("%w: querying order items for order ID %d: %v", ErrDatabaseError, orderID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.MenuItemID, &item.Quantity, &item.ItemName, &item.UnitPrice); err != nil {
			return nil, fmt.Errorf("%w: scanning order item for order ID %d: %v", ErrDatabaseError, orderID, err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating order item rows for order ID %d: %v", ErrDatabaseError, orderID, err)
	}
	return items, nil
}

// GetDailySalesTotal sums total_amount over orders created on the given local
// calendar day. Returns 0 when no orders exist for that day.
func (r *orderRepository) GetDailySalesTotal(day time.Time) (float64, error) {
	start, end := localDayBounds(day)
	var total float64
	query := `SELECT COALESCE(SUM(total_amount), 0) FROM orders WHERE created_at >= ? AND created_at < ?`
	err := r.db.QueryRow(query, start.Format(CreatedAtLayout), end.Format(CreatedAtLayout)).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("%w: computing daily sales total: %v", ErrDatabaseError, err)
	}
	return total, nil
}

// GetDailyOrderCount counts orders created on the given local calendar day.
func (r *orderRepository) GetDailyOrderCount(day time.Time) (int, error) {
	start, end := localDayBounds(day)
	var count int
	query := `SELECT COUNT(*) FROM orders WHERE created_at >= ? AND created_at < ?`
	err := r.db.QueryRow(query, start.Format(CreatedAtLayout), end.Format(CreatedAtLayout)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%w: counting daily orders: %v", ErrDatabaseError, err)
	}
	return count, nil
}

func localDayBounds(day time.Time) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return start, start.AddDate(0, 0, 1)
}
