package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fleetserve/fleet_management_app/internal/apperrors"
	"github.com/fleetserve/fleet_management_app/internal/core/domain"
	portsrepo "github.com/fleetserve/fleet_management_app/internal/core/ports/repositories"
)

type SQLiteVehicleRepository struct {
	BaseRepository
}

// newSQLiteVehicleRepository creates a new repository for vehicle data.
func newSQLiteVehicleRepository(db *sql.DB) portsrepo.VehicleRepositoryFacade {
	return &SQLiteVehicleRepository{
		BaseRepository: BaseRepository{DB: db},
	}
}

// Ensure implementation matches interface
var _ portsrepo.VehicleRepositoryFacade = (*SQLiteVehicleRepository)(nil)

// SaveVehicle inserts a new vehicle.
func (r *SQLiteVehicleRepository) SaveVehicle(ctx context.Context, vehicle domain.Vehicle) error {
	query := `
		INSERT INTO vehicles (vehicle_id, vehicle_number, make, model, year, status, created_at, last_updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?);
	`
	_, err := r.DB.ExecContext(ctx, query,
		vehicle.VehicleID,
		vehicle.VehicleNumber,
		vehicle.Make,
		vehicle.Model,
		vehicle.Year,
		string(vehicle.Status),
		vehicle.CreatedAt,
		vehicle.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("vehicle number %s already exists: %w", vehicle.VehicleNumber, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save vehicle %s: %w", vehicle.VehicleID, err)
	}
	return nil
}

// FindVehicleByID retrieves a vehicle by its unique identifier.
func (r *SQLiteVehicleRepository) FindVehicleByID(ctx context.Context, vehicleID string) (*domain.Vehicle, error) {
	query := `
		SELECT vehicle_id, vehicle_number, make, model, year, status, created_at, last_updated_at
		FROM vehicles
		WHERE vehicle_id = ?;
	`
	var v domain.Vehicle
	var status string
	err := r.DB.QueryRowContext(ctx, query, vehicleID).Scan(
		&v.VehicleID,
		&v.VehicleNumber,
		&v.Make,
		&v.Model,
		&v.Year,
		&status,
		&v.CreatedAt,
		&v.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find vehicle %s: %w", vehicleID, err)
	}
	v.Status = domain.VehicleStatus(status)
	return &v, nil
}

// ListVehicles retrieves all vehicles ordered by vehicle number.
func (r *SQLiteVehicleRepository) ListVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	query := `
		SELECT vehicle_id, vehicle_number, make, model, year, status, created_at, last_updated_at
		FROM vehicles
		ORDER BY vehicle_number;
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		var v domain.Vehicle
		var status string
		if err := rows.Scan(
			&v.VehicleID,
			&v.VehicleNumber,
			&v.Make,
			&v.Model,
			&v.Year,
			&status,
			&v.CreatedAt,
			&v.LastUpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan vehicle row: %w", err)
		}
		v.Status = domain.VehicleStatus(status)
		vehicles = append(vehicles, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate vehicle rows: %w", err)
	}
	return vehicles, nil
}

// UpdateVehicle updates an existing vehicle's details.
func (r *SQLiteVehicleRepository) UpdateVehicle(ctx context.Context, vehicle domain.Vehicle) error {
	query := `
		UPDATE vehicles
		SET vehicle_number = ?, make = ?, model = ?, year = ?, status = ?, last_updated_at = ?
		WHERE vehicle_id = ?;
	`
	res, err := r.DB.ExecContext(ctx, query,
		vehicle.VehicleNumber,
		vehicle.Make,
		vehicle.Model,
		vehicle.Year,
		string(vehicle.Status),
		vehicle.LastUpdatedAt,
		vehicle.VehicleID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("vehicle number %s already exists: %w", vehicle.VehicleNumber, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to update vehicle %s: %w", vehicle.VehicleID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows for vehicle %s: %w", vehicle.VehicleID, err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteVehicle removes a vehicle, refusing while transactions still
// reference it.
func (r *SQLiteVehicleRepository) DeleteVehicle(ctx context.Context, vehicleID string) error {
	var refs int
	countQuery := `SELECT COUNT(*) FROM vehicle_transactions WHERE vehicle_id = ?;`
	if err := r.DB.QueryRowContext(ctx, countQuery, vehicleID).Scan(&refs); err != nil {
		return fmt.Errorf("failed to count transactions for vehicle %s: %w", vehicleID, err)
	}
	if refs > 0 {
		return fmt.Errorf("vehicle %s has %d transactions: %w", vehicleID, refs, apperrors.ErrConflict)
	}

	res, err := r.DB.ExecContext(ctx, `DELETE FROM vehicles WHERE vehicle_id = ?;`, vehicleID)
	if err != nil {
		return fmt.Errorf("failed to delete vehicle %s: %w", vehicleID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows for vehicle %s: %w", vehicleID, err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
