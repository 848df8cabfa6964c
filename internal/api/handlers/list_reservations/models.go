package list_reservations

import (
	"strconv"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/reservations/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(
	renterIDStr string,
	vehicleIDStr string,
	statusStr string,
	startFromStr string,
	startToStr string,
) (*models.ListReservationsRequest, error) {
	req := &models.ListReservationsRequest{}

	if renterIDStr != "" {
		renterID, err := strconv.ParseInt(renterIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.RenterID = &renterID
	}

	if vehicleIDStr != "" {
		vehicleID, err := strconv.ParseInt(vehicleIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.VehicleID = &vehicleID
	}

	if statusStr != "" {
		req.Status = &statusStr
	}

	if startFromStr != "" {
		startFrom, err := time.Parse(domain.TimestampFormat, startFromStr)
		if err != nil {
			return nil, err
		}
		req.StartFrom = &startFrom
	}

	if startToStr != "" {
		startTo, err := time.Parse(domain.TimestampFormat, startToStr)
		if err != nil {
			return nil, err
		}
		req.StartTo = &startTo
	}

	return req, nil
}
