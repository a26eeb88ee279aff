package database

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

var DB *sql.DB

// InitDB opens the SQLite database file, creating its directory if needed,
// and runs schema initialization plus first-run seeding.
func InitDB(dbPath, menuCSVPath, defaultStaffUser, defaultStaffPassword string) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("Error creating database directory: %q", err)
		}
	}

	var err error
	// foreign_keys is off by default in SQLite; the delete guard on menu items
	// relies on it being enforced.
	DB, err = sql.Open("sqlite3", dbPath+"?_foreign_keys=on")
	if err != nil {
		log.Fatalf("Error opening database: %q", err)
	}

	if err = DB.Ping(); err != nil {
		log.Fatalf("Error connecting to database: %q", err)
	}

	if err = InitializeSchema(DB, defaultStaffUser, defaultStaffPassword); err != nil {
		log.Fatalf("Error initializing database schema: %q", err)
	}

	if err = SeedMenuFromCSVIfEmpty(DB, menuCSVPath); err != nil {
		log.Fatalf("Error seeding menu: %q", err)
	}
}

// Open opens a database without the package-level global, for tests and tools.
func Open(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("could not open database %s: %w", dbPath, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not connect to database %s: %w", dbPath, err)
	}
	return db, nil
}

// GetDB returns the database connection pool
func GetDB() *sql.DB {
	return DB
}
