package services

import (
	"context"
	"errors"
	"fmt"

	"gms-backend/internal/auth"
	"gms-backend/internal/models"
	"gms-backend/internal/repositories"
)

type UserService struct {
	Repo *repositories.UserRepository
}

func NewUserService(repo *repositories.UserRepository) *UserService {
	return &UserService{Repo: repo}
}

func (s *UserService) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
		IsActive:     true,
	}

	if err := s.Repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetUser(ctx context.Context, id int) (*models.User, error) {
	return s.Repo.Get(ctx, id)
}

func (s *UserService) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.Repo.List(ctx)
}

func (s *UserService) UpdateUser(ctx context.Context, id int, req *models.UpdateUserRequest) (*models.User, error) {
	user, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Name = req.Name
	user.Email = req.Email
	user.Role = req.Role

	if err := s.Repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) ToggleActive(ctx context.Context, id int) (*models.User, error) {
	if err := s.Repo.ToggleActive(ctx, id); err != nil {
		return nil, err
	}
	return s.Repo.Get(ctx, id)
}

func (s *UserService) DeleteUser(ctx context.Context, id int) error {
	return s.Repo.Delete(ctx, id)
}

// SetupTOTP generates a new secret and QR for the user. The secret is stored
// but 2FA stays off until the first code is verified.
func (s *UserService) SetupTOTP(ctx context.Context, userID int) (*auth.TOTPSetup, error) {
	user, err := s.Repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	setup, err := auth.GenerateTOTPSetup(user.Email)
	if err != nil {
		return nil, err
	}

	if err := s.Repo.SetTOTPSecret(ctx, user.ID, setup.Secret); err != nil {
		return nil, err
	}
	return setup, nil
}

// ConfirmTOTP verifies the first code and switches 2FA on.
func (s *UserService) ConfirmTOTP(ctx context.Context, userID int, code string) error {
	user, err := s.Repo.Get(ctx, userID)
	if err != nil {
		return err
	}
	if user.TOTPSecret == "" {
		return errors.New("TOTP setup not started")
	}
	if !auth.ValidateTOTPCode(user.TOTPSecret, code) {
		return errors.New("invalid verification code")
	}
	return s.Repo.EnableTOTP(ctx, userID)
}
