package repositories

import (
	"database/sql"
	"testing"

	"restaurant_pos_backend/internal/database"
	"restaurant_pos_backend/internal/models"
)

// newTestDB opens an in-memory database with the full schema applied. The pool
// is pinned to one connection because every SQLite :memory: connection is its
// own database.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	if err := database.InitializeSchema(db, "admin", "admin123"); err != nil {
		t.Fatalf("initialize schema: %v", err)
	}
	return db
}

func mustCreateMenuItem(t *testing.T, repo MenuRepository, db *sql.DB, name string, price float64, available bool) *models.MenuItem {
	t.Helper()
	item := &models.MenuItem{Name: name, Price: price, GSTPercent: 5, AvailableToday: available}
	if _, err := repo.CreateMenuItem(db, item); err != nil {
		t.Fatalf("create menu item %q: %v", name, err)
	}
	return item
}
