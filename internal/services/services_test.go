package services

import (
	"database/sql"
	"testing"

	"restaurant_pos_backend/internal/database"
	"restaurant_pos_backend/internal/models"
	"restaurant_pos_backend/internal/repositories"
)

// newServiceDB opens an in-memory database with the schema applied, pinned to
// a single connection because each SQLite :memory: connection is its own
// database.
func newServiceDB(t *testing.T) *sql.DB {
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

func seedMenuItem(t *testing.T, db *sql.DB, name string, price, gst float64, available bool) *models.MenuItem {
	t.Helper()
	repo := repositories.NewMenuRepository(db)
	item := &models.MenuItem{Name: name, Price: price, GSTPercent: gst, AvailableToday: available}
	if _, err := repo.CreateMenuItem(db, item); err != nil {
		t.Fatalf("seed menu item %q: %v", name, err)
	}
	return item
}
