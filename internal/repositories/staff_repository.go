package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"restaurant_pos_backend/internal/models"
)

// StaffRepository defines the interface for staff account database operations.
// There is deliberately no delete method: staff accounts persist.
type StaffRepository interface {
	CreateStaff(executor SQLExecutor, username, passwordHash string) (int64, error)
	FindByUsername(username string) (*models.StaffAccount, error)
	UpdatePassword(executor SQLExecutor, username, passwordHash string) error
}

type staffRepository struct {
	db *sql.DB
}

// NewStaffRepository creates a new instance of StaffRepository.
func NewStaffRepository(db *sql.DB) StaffRepository {
	return &staffRepository{db: db}
}

func (r *staffRepository) CreateStaff(executor SQLExecutor, username, passwordHash string) (int64, error) {
	query := `INSERT INTO staff (username, password_hash) VALUES (?, ?)`
	result, err := executor.Exec(query, username, passwordHash)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: username %q is already taken", ErrDuplicateKey, username)
		}
		return 0, fmt.Errorf("%w: creating staff account: %v", ErrDatabaseError, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: reading new staff account id: %v", ErrDatabaseError, err)
	}
	return id, nil
}

// FindByUsername does a case-sensitive exact lookup; SQLite TEXT comparison
// is case-sensitive by default, matching the login contract.
func (r *staffRepository) FindByUsername(username string) (*models.StaffAccount, error) {
	account := &models.StaffAccount{}
	query := `SELECT id, username, password_hash FROM staff WHERE username = ?`
	err := r.db.QueryRow(query, username).Scan(&account.ID, &account.Username, &account.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: finding staff account %q: %v", ErrDatabaseError, username, err)
	}
	return account, nil
}

func (r *staffRepository) UpdatePassword(executor SQLExecutor, username, passwordHash string) error {
	query := `UPDATE staff SET password_hash = ? WHERE username = ?`
	result, err := executor.Exec(query, passwordHash, username)
	if err != nil {
		return fmt.Errorf("%w: updating password for %q: %v", ErrDatabaseError, username, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
