package services

import (
	"errors"
	"fmt"

	"restaurant_pos_backend/internal/models"
	"restaurant_pos_backend/internal/repositories"
	"restaurant_pos_backend/pkg/utils"

	"golang.org/x/crypto/bcrypt"
)

// --- Custom Service Errors ---
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrTokenGeneration    = errors.New("failed to generate token")
)

// --- Data Transfer Objects (DTOs) ---

// LoginRequest DTO
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse DTO
type AuthResponse struct {
	Staff       *models.StaffAccount `json:"staff"`
	AccessToken string               `json:"access_token"`
}

// --- AuthService Interface ---
type AuthService interface {
	Login(req LoginRequest) (*AuthResponse, error)
}

// --- authService Implementation ---
type authService struct {
	staffRepo repositories.StaffRepository
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(staffRepo repositories.StaffRepository) AuthService {
	return &authService{staffRepo: staffRepo}
}

// Login validates a staff credential pair and returns a signed access token.
// The username lookup is case-sensitive; password comparison is against the
// stored bcrypt hash.
func (s *authService) Login(req LoginRequest) (*AuthResponse, error) {
	account, err := s.staffRepo.FindByUsername(req.Username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login attempt failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := utils.GenerateAccessToken(account.ID, account.Username)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenGeneration, err)
	}

	account.PasswordHash = ""
	return &AuthResponse{
		Staff:       account,
		AccessToken: accessToken,
	}, nil
}
