package repositories

import (
	"errors"
	"testing"
	"time"

	"restaurant_pos_backend/internal/models"
)

func sampleOrder(createdAt time.Time) *models.Order {
	return &models.Order{
		OrderType:     models.OrderTypeDineIn,
		PaymentMethod: models.PaymentMethodCash,
		Subtotal:      200, GSTAmount: 10, Discount: 20, TotalAmount: 190,
		CreatedAt: createdAt,
	}
}

func TestOrderRepositoryCreateAndGet(t *testing.T) {
	db := newTestDB(t)
	orderRepo := NewOrderRepository(db)
	menuRepo := NewMenuRepository(db)

	item := mustCreateMenuItem(t, menuRepo, db, "Masala Dosa", 80, true)

	createdAt := time.Date(2026, 3, 14, 13, 45, 10, 0, time.Local)
	order := sampleOrder(createdAt)
	id, err := orderRepo.CreateOrder(db, order)
	if err != nil {
		t.Fatalf("CreateOrder() error = %v", err)
	}

	oi := &models.OrderItem{OrderID: id, MenuItemID: item.ID, Quantity: 2}
	if _, err := orderRepo.CreateOrderItem(db, oi); err != nil {
		t.Fatalf("CreateOrderItem() error = %v", err)
	}

	got, err := orderRepo.GetOrderByID(id)
	if err != nil {
		t.Fatalf("GetOrderByID() error = %v", err)
	}
	if got.OrderType != models.OrderTypeDineIn || got.TotalAmount != 190 {
		t.Errorf("GetOrderByID() = %+v", got)
	}
	if !got.CreatedAt.Equal(createdAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, createdAt)
	}

	items, err := orderRepo.GetOrderItemsByOrderID(id)
	if err != nil {
		t.Fatalf("GetOrderItemsByOrderID() error = %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if items[0].ItemName != "Masala Dosa" || items[0].UnitPrice != 80 || items[0].Quantity != 2 {
		t.Errorf("order item = %+v", items[0])
	}
}

func TestOrderRepositoryGetMissingOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)

	if _, err := repo.GetOrderByID(9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetOrderByID(9999) error = %v, want ErrNotFound", err)
	}
}

func TestOrderRepositoryCreateOrderDefaultsCreatedAt(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)

	before := time.Now().Add(-time.Second)
	order := sampleOrder(time.Time{})
	id, err := repo.CreateOrder(db, order)
	if err != nil {
		t.Fatalf("CreateOrder() error = %v", err)
	}
	after := time.Now().Add(time.Second)

	got, err := repo.GetOrderByID(id)
	if err != nil {
		t.Fatalf("GetOrderByID() error = %v", err)
	}
	if got.CreatedAt.Before(before) || got.CreatedAt.After(after) {
		t.Errorf("CreatedAt = %v, want roughly now", got.CreatedAt)
	}
}

func TestOrderRepositoryOrderItemRequiresExistingRows(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)

	oi := &models.OrderItem{OrderID: 9999, MenuItemID: 9999, Quantity: 1}
	if _, err := repo.CreateOrderItem(db, oi); !errors.Is(err, ErrForeignKeyViolation) {
		t.Errorf("CreateOrderItem() with dangling references error = %v, want ErrForeignKeyViolation", err)
	}
}

func TestOrderRepositoryDailySales(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)

	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.Local)

	insert := func(at time.Time, total float64) {
		t.Helper()
		order := sampleOrder(at)
		order.TotalAmount = total
		if _, err := repo.CreateOrder(db, order); err != nil {
			t.Fatalf("CreateOrder() error = %v", err)
		}
	}

	// Three orders on the day, from just after midnight to just before the
	// next one, plus one order on each neighboring day.
	insert(day.Add(1*time.Minute), 190)
	insert(day.Add(13*time.Hour), 250.50)
	insert(day.Add(23*time.Hour+59*time.Minute), 100)
	insert(day.AddDate(0, 0, -1).Add(12*time.Hour), 999)
	insert(day.AddDate(0, 0, 1).Add(1*time.Minute), 888)

	total, err := repo.GetDailySalesTotal(day.Add(10 * time.Hour))
	if err != nil {
		t.Fatalf("GetDailySalesTotal() error = %v", err)
	}
	if want := 190 + 250.50 + 100; total != want {
		t.Errorf("GetDailySalesTotal() = %v, want %v", total, want)
	}

	count, err := repo.GetDailyOrderCount(day)
	if err != nil {
		t.Fatalf("GetDailyOrderCount() error = %v", err)
	}
	if count != 3 {
		t.Errorf("GetDailyOrderCount() = %d, want 3", count)
	}
}

func TestOrderRepositoryDailySalesEmptyDay(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)

	total, err := repo.GetDailySalesTotal(time.Now())
	if err != nil {
		t.Fatalf("GetDailySalesTotal() error = %v", err)
	}
	if total != 0 {
		t.Errorf("GetDailySalesTotal() on empty day = %v, want 0", total)
	}

	count, err := repo.GetDailyOrderCount(time.Now())
	if err != nil {
		t.Fatalf("GetDailyOrderCount() error = %v", err)
	}
	if count != 0 {
		t.Errorf("GetDailyOrderCount() on empty day = %d, want 0", count)
	}
}
