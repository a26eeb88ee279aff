package services

import (
	"database/sql"
	"errors"
	"fmt"

	"restaurant_pos_backend/internal/models"
	"restaurant_pos_backend/internal/repositories"
	"restaurant_pos_backend/pkg/utils"
)

// --- Custom Service Errors for Menu ---
var (
	ErrMenuItemNotFound   = errors.New("menu item not found")
	ErrMenuItemInUse      = errors.New("menu item is referenced by recorded orders and cannot be deleted")
	ErrMenuDataValidation = errors.New("menu data validation error")
)

// --- Menu DTOs ---

type MenuItemRequest struct {
	Name           string  `json:"name" binding:"required"`
	Category       string  `json:"category"`
	Price          float64 `json:"price"`
	GSTPercent     float64 `json:"gst_percent"`
	AvailableToday bool    `json:"available_today"`
}

type SetAvailabilityRequest struct {
	Available *bool `json:"available" binding:"required"`
}

// --- MenuService Interface ---
type MenuService interface {
	CreateMenuItem(req MenuItemRequest) (*models.MenuItem, error)
	GetMenuItems() ([]models.MenuItem, error)
	GetAvailableMenuItems() ([]models.MenuItem, error)
	GetMenuItemByID(id int64) (*models.MenuItem, error)
	UpdateMenuItem(id int64, req MenuItemRequest) (*models.MenuItem, error)
	DeleteMenuItem(id int64) error
	SetAvailableToday(id int64, available bool) error
}

// --- menuService Implementation ---
type menuService struct {
	menuRepo repositories.MenuRepository
	db       *sql.DB
}

// NewMenuService creates a new instance of MenuService.
func NewMenuService(menuRepo repositories.MenuRepository, db *sql.DB) MenuService {
	return &menuService{menuRepo: menuRepo, db: db}
}

func validateMenuItemRequest(req MenuItemRequest) error {
	if utils.IsEmpty(req.Name) {
		return fmt.Errorf("%w: name is required", ErrMenuDataValidation)
	}
	if req.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrMenuDataValidation)
	}
	if req.GSTPercent < 0 {
		return fmt.Errorf("%w: gst_percent must not be negative", ErrMenuDataValidation)
	}
	return nil
}

func (s *menuService) CreateMenuItem(req MenuItemRequest) (*models.MenuItem, error) {
	if err := validateMenuItemRequest(req); err != nil {
		return nil, err
	}

	item := models.MenuItem{
		Name:           req.Name,
		Category:       utils.NewNullString(req.Category),
		Price:          req.Price,
		GSTPercent:     req.GSTPercent,
		AvailableToday: req.AvailableToday,
	}
	if _, err := s.menuRepo.CreateMenuItem(s.db, &item); err != nil {
		return nil, fmt.Errorf("failed to create menu item: %w", err)
	}
	return &item, nil
}

func (s *menuService) GetMenuItems() ([]models.MenuItem, error) {
	items, err := s.menuRepo.GetMenuItems()
	if err != nil {
		return nil, fmt.Errorf("failed to list menu: %w", err)
	}
	return items, nil
}

func (s *menuService) GetAvailableMenuItems() ([]models.MenuItem, error) {
	items, err := s.menuRepo.GetAvailableMenuItems()
	if err != nil {
		return nil, fmt.Errorf("failed to list available menu: %w", err)
	}
	return items, nil
}

func (s *menuService) GetMenuItemByID(id int64) (*models.MenuItem, error) {
	item, err := s.menuRepo.GetMenuItemByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, fmt.Errorf("failed to get menu item: %w", err)
	}
	return item, nil
}

func (s *menuService) UpdateMenuItem(id int64, req MenuItemRequest) (*models.MenuItem, error) {
	if err := validateMenuItemRequest(req); err != nil {
		return nil, err
	}

	item := models.MenuItem{
		ID:             id,
		Name:           req.Name,
		Category:       utils.NewNullString(req.Category),
		Price:          req.Price,
		GSTPercent:     req.GSTPercent,
		AvailableToday: req.AvailableToday,
	}
	if err := s.menuRepo.UpdateMenuItem(s.db, &item); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, fmt.Errorf("failed to update menu item: %w", err)
	}
	return &item, nil
}

// DeleteMenuItem removes a menu row. Items referenced by historical order
// lines are refused rather than deleted, so recorded orders never dangle;
// the availability flag is the archival mechanism for retired dishes.
func (s *menuService) DeleteMenuItem(id int64) error {
	if err := s.menuRepo.DeleteMenuItem(s.db, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrMenuItemNotFound
		}
		if errors.Is(err, repositories.ErrForeignKeyViolation) {
			return ErrMenuItemInUse
		}
		return fmt.Errorf("failed to delete menu item: %w", err)
	}
	return nil
}

func (s *menuService) SetAvailableToday(id int64, available bool) error {
	if err := s.menuRepo.SetAvailableToday(s.db, id, available); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrMenuItemNotFound
		}
		return fmt.Errorf("failed to set menu item availability: %w", err)
	}
	return nil
}
