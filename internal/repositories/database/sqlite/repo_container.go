package sqlite

import (
	"database/sql"

	portsrepo "github.com/fleetserve/fleet_management_app/internal/core/ports/repositories"
)

// NewRepositoryProvider builds the full set of SQLite-backed repositories
// sharing one database handle.
func NewRepositoryProvider(db *sql.DB) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		VehicleRepo:       newSQLiteVehicleRepository(db),
		TransactionRepo:   newSQLiteTransactionRepository(db),
		CustomerRepo:      newSQLiteCustomerRepository(db),
		InvoiceRepo:       newSQLiteInvoiceRepository(db),
		QuotationRepo:     newSQLiteQuotationRepository(db),
		PurchaseOrderRepo: newSQLitePurchaseOrderRepository(db),
		EmployeeRepo:      newSQLiteEmployeeRepository(db),
	}
}
