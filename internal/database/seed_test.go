package database

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "menu.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write seed CSV: %v", err)
	}
	return path
}

func TestSeedMenuFromCSV(t *testing.T) {
	db := newTestDB(t)
	if err := InitializeSchema(db, "admin", "admin123"); err != nil {
		t.Fatalf("InitializeSchema() error = %v", err)
	}

	path := writeCSV(t, "name,category,price,gst_percent,available_today\n"+
		"Masala Dosa,South Indian,80,5,1\n"+
		"Gulab Jamun,Desserts,60,5,0\n")

	if err := SeedMenuFromCSVIfEmpty(db, path); err != nil {
		t.Fatalf("SeedMenuFromCSVIfEmpty() error = %v", err)
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM menu`).Scan(&count); err != nil {
		t.Fatalf("count menu: %v", err)
	}
	if count != 2 {
		t.Fatalf("menu rows = %d, want 2", count)
	}

	var price float64
	var available int
	err := db.QueryRow(`SELECT price, available_today FROM menu WHERE name='Masala Dosa'`).Scan(&price, &available)
	if err != nil {
		t.Fatalf("read seeded row: %v", err)
	}
	if price != 80 || available != 1 {
		t.Errorf("seeded row price=%v available=%d, want 80 and 1", price, available)
	}
}

func TestSeedWithoutAvailabilityColumnDefaultsToAvailable(t *testing.T) {
	db := newTestDB(t)
	if err := InitializeSchema(db, "admin", "admin123"); err != nil {
		t.Fatalf("InitializeSchema() error = %v", err)
	}

	path := writeCSV(t, "name,category,price,gst_percent\n"+
		"Masala Dosa,South Indian,80,5\n"+
		"Filter Coffee,Beverages,30,12\n")

	if err := SeedMenuFromCSVIfEmpty(db, path); err != nil {
		t.Fatalf("SeedMenuFromCSVIfEmpty() error = %v", err)
	}

	var available int
	if err := db.QueryRow(`SELECT COUNT(*) FROM menu WHERE available_today = 1`).Scan(&available); err != nil {
		t.Fatalf("count available: %v", err)
	}
	if available != 2 {
		t.Errorf("available rows = %d, want 2 (seed defaults to available)", available)
	}
}

func TestSeedSkipsMalformedRows(t *testing.T) {
	db := newTestDB(t)
	if err := InitializeSchema(db, "admin", "admin123"); err != nil {
		t.Fatalf("InitializeSchema() error = %v", err)
	}

	path := writeCSV(t, "name,category,price,gst_percent\n"+
		"Good Item,Main Course,120,5\n"+
		",Main Course,50,5\n"+ // empty name
		"No Price Item,Main Course,abc,5\n"+ // non-numeric price
		"Negative,Main Course,-10,5\n"+ // negative price
		"Another Good,Beverages,30,12\n")

	if err := SeedMenuFromCSVIfEmpty(db, path); err != nil {
		t.Fatalf("SeedMenuFromCSVIfEmpty() error = %v", err)
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM menu`).Scan(&count); err != nil {
		t.Fatalf("count menu: %v", err)
	}
	if count != 2 {
		t.Errorf("menu rows = %d, want 2 (malformed rows skipped)", count)
	}
}

func TestSeedSkipsRowsThatFailToInsert(t *testing.T) {
	db := newTestDB(t)

	// A menu table with a unique name constraint, so a duplicate row fails at
	// insert time rather than at parse time.
	_, err := db.Exec(`CREATE TABLE menu (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		category TEXT,
		price REAL NOT NULL,
		gst_percent REAL NOT NULL DEFAULT 0,
		available_today INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		t.Fatalf("create menu table: %v", err)
	}

	path := writeCSV(t, "name,category,price,gst_percent\n"+
		"Masala Dosa,South Indian,80,5\n"+
		"Masala Dosa,South Indian,85,5\n"+
		"Filter Coffee,Beverages,30,12\n")

	if err := SeedMenuFromCSVIfEmpty(db, path); err != nil {
		t.Fatalf("SeedMenuFromCSVIfEmpty() error = %v", err)
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM menu`).Scan(&count); err != nil {
		t.Fatalf("count menu: %v", err)
	}
	if count != 2 {
		t.Errorf("menu rows = %d, want 2 (failed insert skipped, load continues)", count)
	}
}

func TestSeedDoesNotRunWhenMenuHasRows(t *testing.T) {
	db := newTestDB(t)
	if err := InitializeSchema(db, "admin", "admin123"); err != nil {
		t.Fatalf("InitializeSchema() error = %v", err)
	}
	if _, err := db.Exec(`INSERT INTO menu (name, price, gst_percent, available_today) VALUES ('Existing', 10, 0, 1)`); err != nil {
		t.Fatalf("insert existing row: %v", err)
	}

	path := writeCSV(t, "name,price\nNew Item,99\n")
	if err := SeedMenuFromCSVIfEmpty(db, path); err != nil {
		t.Fatalf("SeedMenuFromCSVIfEmpty() error = %v", err)
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM menu`).Scan(&count); err != nil {
		t.Fatalf("count menu: %v", err)
	}
	if count != 1 {
		t.Errorf("menu rows = %d, want 1 (seed must not touch a populated table)", count)
	}
}

func TestSeedMissingFileIsNotAnError(t *testing.T) {
	db := newTestDB(t)
	if err := InitializeSchema(db, "admin", "admin123"); err != nil {
		t.Fatalf("InitializeSchema() error = %v", err)
	}

	if err := SeedMenuFromCSVIfEmpty(db, filepath.Join(t.TempDir(), "nope.csv")); err != nil {
		t.Errorf("SeedMenuFromCSVIfEmpty() with missing file error = %v, want nil", err)
	}
}

func TestSeedRejectsCSVWithoutRequiredColumns(t *testing.T) {
	db := newTestDB(t)
	if err := InitializeSchema(db, "admin", "admin123"); err != nil {
		t.Fatalf("InitializeSchema() error = %v", err)
	}

	path := writeCSV(t, "title,cost\nSomething,10\n")
	if err := SeedMenuFromCSVIfEmpty(db, path); err == nil {
		t.Error("SeedMenuFromCSVIfEmpty() error = nil, want missing-column error")
	}
}
