package services

import (
	"database/sql"
	"errors"
	"fmt"

	"restaurant_pos_backend/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// --- Custom Service Errors for Staff ---
var (
	ErrUsernameExists      = errors.New("username already exists")
	ErrStaffNotFound       = errors.New("staff account not found")
	ErrStaffDataValidation = errors.New("staff data validation error")
)

// --- Staff DTOs ---
type AddStaffRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	Username    string `json:"username" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// --- StaffService Interface ---
type StaffService interface {
	AddStaff(req AddStaffRequest) (int64, error)
	ChangePassword(req ChangePasswordRequest) error
}

// --- staffService Implementation ---
type staffService struct {
	staffRepo repositories.StaffRepository
	db        *sql.DB
}

// NewStaffService creates a new instance of StaffService.
func NewStaffService(staffRepo repositories.StaffRepository, db *sql.DB) StaffService {
	return &staffService{staffRepo: staffRepo, db: db}
}

// AddStaff creates a new staff account. A duplicate username fails without
// touching the existing row.
func (s *staffService) AddStaff(req AddStaffRequest) (int64, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	id, err := s.staffRepo.CreateStaff(s.db, req.Username, string(hash))
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return 0, ErrUsernameExists
		}
		return 0, fmt.Errorf("failed to add staff account: %w", err)
	}
	return id, nil
}

// ChangePassword replaces the password of an existing account. Unknown
// usernames report not-found; nothing is created.
func (s *staffService) ChangePassword(req ChangePasswordRequest) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.staffRepo.UpdatePassword(s.db, req.Username, string(hash)); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrStaffNotFound
		}
		return fmt.Errorf("failed to change password: %w", err)
	}
	return nil
}
