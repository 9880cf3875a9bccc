package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	VehicleRepo       VehicleRepositoryFacade
	TransactionRepo   TransactionRepositoryFacade
	CustomerRepo      CustomerRepositoryFacade
	InvoiceRepo       InvoiceRepositoryFacade
	QuotationRepo     QuotationRepositoryFacade
	PurchaseOrderRepo PurchaseOrderRepositoryFacade
	EmployeeRepo      EmployeeRepositoryFacade
}
