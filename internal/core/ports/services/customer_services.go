package services

import (
	"context"

	"github.com/fleetserve/fleet_management_app/internal/core/domain"
	"github.com/fleetserve/fleet_management_app/internal/dto"
)

// CustomerSvcFacade defines operations for customer data
type CustomerSvcFacade interface {
	// GetCustomerByID retrieves a specific customer by its unique identifier.
	GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)

	// ListCustomers retrieves all customers.
	ListCustomers(ctx context.Context) ([]domain.Customer, error)

	// CreateCustomer persists a new customer.
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error)

	// UpdateCustomer updates an existing customer's details.
	UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest) (*domain.Customer, error)

	// DeleteCustomer removes a customer; fails with apperrors.ErrConflict when
	// invoices still reference it.
	DeleteCustomer(ctx context.Context, customerID string) error
}
