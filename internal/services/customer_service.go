package services

import (
	"context"
	"errors"

	"gms-backend/internal/models"
	"gms-backend/internal/repositories"
)

type CustomerService struct {
	Repo     *repositories.CustomerRepository
	FlatRepo *repositories.FlatRepository
}

func NewCustomerService(repo *repositories.CustomerRepository, flatRepo *repositories.FlatRepository) *CustomerService {
	return &CustomerService{Repo: repo, FlatRepo: flatRepo}
}

func (s *CustomerService) CreateCustomer(ctx context.Context, req *models.CreateCustomerRequest) (*models.Customer, error) {
	// The flat must exist before a customer can be attached to it
	if _, err := s.FlatRepo.Get(ctx, req.FlatID); err != nil {
		return nil, errors.New("flat not found")
	}

	customer := &models.Customer{
		FlatID: req.FlatID,
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Role:   req.Role,
	}

	if err := s.Repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) GetCustomer(ctx context.Context, id int) (*models.Customer, error) {
	return s.Repo.Get(ctx, id)
}

func (s *CustomerService) ListCustomers(ctx context.Context, search, role string) ([]*models.Customer, error) {
	return s.Repo.List(ctx, search, role)
}

func (s *CustomerService) ListByFlat(ctx context.Context, flatID int) ([]*models.Customer, error) {
	return s.Repo.ListByFlat(ctx, flatID)
}

func (s *CustomerService) UpdateCustomer(ctx context.Context, id int, req *models.UpdateCustomerRequest) (*models.Customer, error) {
	customer, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	customer.FlatID = req.FlatID
	customer.Name = req.Name
	customer.Email = req.Email
	customer.Phone = req.Phone
	customer.Role = req.Role

	if err := s.Repo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Approve sets or clears approved_by from the acting admin and returns the
// authoritative record so clients reconcile against server state, not their
// pre-toggled local value.
func (s *CustomerService) Approve(ctx context.Context, id, actorID int, approve bool) (*models.Customer, error) {
	var approvedBy *int
	if approve {
		approvedBy = &actorID
	}

	if err := s.Repo.SetApproval(ctx, id, approvedBy); err != nil {
		return nil, err
	}
	return s.Repo.Get(ctx, id)
}

func (s *CustomerService) ToggleDisabled(ctx context.Context, id int) (*models.Customer, error) {
	if err := s.Repo.ToggleDisabled(ctx, id); err != nil {
		return nil, err
	}
	return s.Repo.Get(ctx, id)
}

func (s *CustomerService) DeleteCustomer(ctx context.Context, id int) error {
	return s.Repo.Delete(ctx, id)
}
