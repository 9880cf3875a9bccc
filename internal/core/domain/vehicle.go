package domain

// VehicleStatus describes where a vehicle is in its service lifecycle.
type VehicleStatus string

const (
	VehicleActive      VehicleStatus = "active"
	VehicleMaintenance VehicleStatus = "maintenance"
	VehicleRetired     VehicleStatus = "retired"
)

// Vehicle represents one vehicle in the fleet.
type Vehicle struct {
	VehicleID     string        `json:"vehicleID"`
	VehicleNumber string        `json:"vehicleNumber"` // Unique display key (registration plate)
	Make          string        `json:"make"`
	Model         string        `json:"model"`
	Year          int           `json:"year"`
	Status        VehicleStatus `json:"status"`
	AuditFields
}
