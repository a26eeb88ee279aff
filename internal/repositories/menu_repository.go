package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"restaurant_pos_backend/internal/models"
)

// MenuRepository defines the interface for menu-related database operations.
type MenuRepository interface {
	CreateMenuItem(executor SQLExecutor, item *models.MenuItem) (int64, error)
	GetMenuItemByID(id int64) (*models.MenuItem, error)
	GetMenuItems() ([]models.MenuItem, error)          // All rows, ordered by id, for management
	GetAvailableMenuItems() ([]models.MenuItem, error) // available_today only, ordered by category then name
	UpdateMenuItem(executor SQLExecutor, item *models.MenuItem) error
	DeleteMenuItem(executor SQLExecutor, id int64) error
	SetAvailableToday(executor SQLExecutor, id int64, available bool) error
}

type menuRepository struct {
	db *sql.DB
}

// NewMenuRepository creates a new instance of MenuRepository.
func NewMenuRepository(db *sql.DB) MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) CreateMenuItem(executor SQLExecutor, item *models.MenuItem) (int64, error) {
	query := `INSERT INTO menu (name, category, price, gst_percent, available_today)
	          VALUES (?, ?, ?, ?, ?)`

	result, err := executor.Exec(query, item.Name, item.Category, item.Price, item.GSTPercent, boolToInt(item.AvailableToday))
	if err != nil {
		return 0, fmt.Errorf("%w: creating menu item: %v", ErrDatabaseError, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: reading new menu item id: %v", ErrDatabaseError, err)
	}
	item.ID = id
	return id, nil
}

func scanMenuItemRow(row scanner) (*models.MenuItem, error) {
	var item models.MenuItem
	var category sql.NullString
	var available int

	err := row.Scan(&item.ID, &item.Name, &category, &item.Price, &item.GSTPercent, &available)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: scanning menu item: %v", ErrDatabaseError, err)
	}

	if category.Valid {
		item.Category = &category.String
	}
	item.AvailableToday = available != 0
	return &item, nil
}

func (r *menuRepository) GetMenuItemByID(id int64) (*models.MenuItem, error) {
	query := `SELECT id, name, category, price, gst_percent, available_today FROM menu WHERE id = ?`
	return scanMenuItemRow(r.db.QueryRow(query, id))
}

func (r *menuRepository) GetMenuItems() ([]models.MenuItem, error) {
	query := `SELECT id, name, category, price, gst_percent, available_today FROM menu ORDER BY id`
	return r.queryMenuItems(query)
}

func (r *menuRepository) GetAvailableMenuItems() ([]models.MenuItem, error) {
	query := `SELECT id, name, category, price, gst_percent, available_today
	          FROM menu
	          WHERE available_today = 1
	          ORDER BY category, name`
	return r.queryMenuItems(query)
}

func (r *menuRepository) queryMenuItems(query string) ([]models.MenuItem, error) {
	items := []models.MenuItem{}

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying menu items: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		item, err := scanMenuItemRow(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating menu item rows: %v", ErrDatabaseError, err)
	}
	return items, nil
}

func (r *menuRepository) UpdateMenuItem(executor SQLExecutor, item *models.MenuItem) error {
	query := `UPDATE menu SET name = ?, category = ?, price = ?, gst_percent = ?, available_today = ? WHERE id = ?`
	result, err := executor.Exec(query, item.Name, item.Category, item.Price, item.GSTPercent, boolToInt(item.AvailableToday), item.ID)
	if err != nil {
		return fmt.Errorf("%w: updating menu item ID %d: %v", ErrDatabaseError, item.ID, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *menuRepository) DeleteMenuItem(executor SQLExecutor, id int64) error {
	query := `DELETE FROM menu WHERE id = ?`
	result, err := executor.Exec(query, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: menu item ID %d is referenced by recorded orders", ErrForeignKeyViolation, id)
		}
		return fmt.Errorf("%w: deleting menu item ID %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *menuRepository) SetAvailableToday(executor SQLExecutor, id int64, available bool) error {
	query := `UPDATE menu SET available_today = ? WHERE id = ?`
	result, err := executor.Exec(query, boolToInt(available), id)
	if err != nil {
		return fmt.Errorf("%w: setting availability for menu item ID %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
