package list_rentals

import (
	"strconv"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/rentals/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(query map[string]string) (*models.ListRentalsRequest, error) {
	req := &models.ListRentalsRequest{}

	for _, p := range []struct {
		key  string
		dest **int64
	}{
		{"renterId", &req.RenterID},
		{"vehicleId", &req.VehicleID},
		{"stationPickupId", &req.StationPickupID},
		{"stationReturnId", &req.StationReturnID},
	} {
		if raw := query[p.key]; raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return nil, err
			}
			*p.dest = &id
		}
	}

	if raw := query["status"]; raw != "" {
		status := raw
		req.Status = &status
	}

	if raw := query["startFrom"]; raw != "" {
		startFrom, err := time.Parse(domain.TimestampFormat, raw)
		if err != nil {
			return nil, err
		}
		req.StartFrom = &startFrom
	}

	if raw := query["startTo"]; raw != "" {
		startTo, err := time.Parse(domain.TimestampFormat, raw)
		if err != nil {
			return nil, err
		}
		req.StartTo = &startTo
	}

	return req, nil
}
