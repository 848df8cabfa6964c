package vehicleservice

// VehicleStatus статус транспортного средства в VehicleService
type VehicleStatus string

const (
	VehicleStatusAvailable   VehicleStatus = "available"
	VehicleStatusRented      VehicleStatus = "rented"
	VehicleStatusMaintenance VehicleStatus = "maintenance"
)

// Vehicle модель транспортного средства из VehicleService
type Vehicle struct {
	ID           int64         `json:"id"`
	StationID    int64         `json:"station_id"`
	Model        string        `json:"model"`
	LicensePlate string        `json:"license_plate"`
	RatePerHour  int64         `json:"rate_per_hour"`
	Status       VehicleStatus `json:"status"`
}

// UpdateStatusRequest запрос на обновление статуса транспортного средства
type UpdateStatusRequest struct {
	Status VehicleStatus `json:"status"`
}

// ErrorResponse модель ошибки от VehicleService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
