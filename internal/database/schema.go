package database

import (
	"database/sql"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// InitializeSchema creates the four tables if absent, applies the additive
// available_today migration, and seeds the default staff account when the
// staff table is empty. Running it repeatedly is safe: it never drops or
// duplicates anything.
func InitializeSchema(db *sql.DB, defaultStaffUser, defaultStaffPassword string) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS staff (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS menu (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			category TEXT,
			price REAL NOT NULL,
			gst_percent REAL NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			order_type TEXT NOT NULL,
			payment_method TEXT NOT NULL,
			subtotal REAL NOT NULL,
			gst_amount REAL NOT NULL,
			discount REAL NOT NULL,
			total_amount REAL NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			order_id INTEGER NOT NULL,
			item_id INTEGER NOT NULL,
			quantity INTEGER NOT NULL,
			FOREIGN KEY(order_id) REFERENCES orders(id),
			FOREIGN KEY(item_id) REFERENCES menu(id)
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("could not create table: %w", err)
		}
	}

	if err := migrateAvailableTodayColumn(db); err != nil {
		return err
	}

	return seedDefaultStaffIfEmpty(db, defaultStaffUser, defaultStaffPassword)
}

// migrateAvailableTodayColumn adds menu.available_today when a pre-existing
// database predates the column. Additive only, never destructive.
func migrateAvailableTodayColumn(db *sql.DB) error {
	rows, err := db.Query(`PRAGMA table_info(menu)`)
	if err != nil {
		return fmt.Errorf("could not inspect menu table: %w", err)
	}
	defer rows.Close()

	hasColumn := false
	for rows.Next() {
		var (
			cid        int
			name       string
			colType    string
			notNull    int
			defaultVal sql.NullString
			pk         int
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &defaultVal, &pk); err != nil {
			return fmt.Errorf("could not scan menu column info: %w", err)
		}
		if name == "available_today" {
			hasColumn = true
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("could not iterate menu column info: %w", err)
	}

	if !hasColumn {
		// Existing dishes stay orderable: the column defaults to available, and
		// the operator turns items off from the daily menu screen.
		if _, err := db.Exec(`ALTER TABLE menu ADD COLUMN available_today INTEGER NOT NULL DEFAULT 1`); err != nil {
			return fmt.Errorf("could not add available_today column: %w", err)
		}
	}
	return nil
}

// seedDefaultStaffIfEmpty inserts the bootstrap staff account exactly once,
// when no staff rows exist yet.
func seedDefaultStaffIfEmpty(db *sql.DB, username, password string) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM staff`).Scan(&count); err != nil {
		return fmt.Errorf("could not count staff rows: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("could not hash default staff password: %w", err)
	}
	if _, err := db.Exec(`INSERT INTO staff (username, password_hash) VALUES (?, ?)`, username, string(hash)); err != nil {
		return fmt.Errorf("could not seed default staff account: %w", err)
	}
	return nil
}
