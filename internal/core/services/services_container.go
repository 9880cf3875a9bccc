package services

import (
	portsrepo "github.com/fleetserve/fleet_management_app/internal/core/ports/repositories"
	portssvc "github.com/fleetserve/fleet_management_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Vehicle = NewVehicleService(repos.VehicleRepo)
	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.VehicleRepo)
	container.Customer = NewCustomerService(repos.CustomerRepo)
	container.Invoice = NewInvoiceService(repos.InvoiceRepo, repos.CustomerRepo)
	container.Quotation = NewQuotationService(repos.QuotationRepo, repos.CustomerRepo, repos.InvoiceRepo)
	container.PurchaseOrder = NewPurchaseOrderService(repos.PurchaseOrderRepo)
	container.Employee = NewEmployeeService(repos.EmployeeRepo)
	container.Analytics = NewAnalyticsService(
		repos.TransactionRepo,
		repos.VehicleRepo,
		repos.InvoiceRepo,
		repos.CustomerRepo,
	)

	return container
}
