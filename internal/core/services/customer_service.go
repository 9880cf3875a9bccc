package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fleetserve/fleet_management_app/internal/core/domain"
	portsrepo "github.com/fleetserve/fleet_management_app/internal/core/ports/repositories"
	portssvc "github.com/fleetserve/fleet_management_app/internal/core/ports/services"
	"github.com/fleetserve/fleet_management_app/internal/dto"
	"github.com/google/uuid"
)

// customerService implements the CustomerSvcFacade interface
type customerService struct {
	BaseService
	customerRepo portsrepo.CustomerRepositoryFacade
}

// NewCustomerService creates a new customer service
func NewCustomerService(repo portsrepo.CustomerRepositoryFacade) portssvc.CustomerSvcFacade {
	return &customerService{customerRepo: repo}
}

var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

func (s *customerService) GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	return s.customerRepo.FindCustomerByID(ctx, customerID)
}

func (s *customerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.customerRepo.ListCustomers(ctx)
}

func (s *customerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error) {
	now := time.Now()
	customer := domain.Customer{
		CustomerID: uuid.NewString(),
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Address:    req.Address,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		s.LogError(ctx, err, "Failed to save customer", slog.String("name", req.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Customer created", slog.String("customer_id", customer.CustomerID))
	return &customer, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Email != nil {
		customer.Email = *req.Email
	}
	if req.Phone != nil {
		customer.Phone = *req.Phone
	}
	if req.Address != nil {
		customer.Address = *req.Address
	}
	customer.LastUpdatedAt = time.Now()

	if err := s.customerRepo.UpdateCustomer(ctx, *customer); err != nil {
		s.LogError(ctx, err, "Failed to update customer", slog.String("customer_id", customerID))
		return nil, fmt.Errorf("failed to update customer %s: %w", customerID, err)
	}

	s.LogInfo(ctx, "Customer updated", slog.String("customer_id", customerID))
	return customer, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, customerID string) error {
	if _, err := s.customerRepo.FindCustomerByID(ctx, customerID); err != nil {
		return err
	}
	if err := s.customerRepo.DeleteCustomer(ctx, customerID); err != nil {
		s.LogError(ctx, err, "Failed to delete customer", slog.String("customer_id", customerID))
		return err
	}
	s.LogInfo(ctx, "Customer deleted", slog.String("customer_id", customerID))
	return nil
}
