package check_in

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	checkIn "github.com/m04kA/SMC-RentalService/internal/usecase/check_in"
)

const (
	msgInvalidRequestBody      = "некорректное тело запроса"
	msgReservationNotFound     = "бронь не найдена"
	msgInvalidReservationState = "бронь нельзя использовать для выдачи"
	msgVehicleNotFound         = "транспортное средство не найдено"
	msgVehicleUnavailable      = "транспортное средство недоступно"
	msgInvalidInput            = "некорректные данные запроса"
)

type Handler struct {
	useCase CheckInUseCase
	logger  Logger
}

func NewHandler(useCase CheckInUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/staff/rentals/check-in
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckInRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /staff/rentals/check-in - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, checkIn.ErrReservationNotFound):
			h.logger.Warn("POST /staff/rentals/check-in - Reservation not found: reservation_id=%v", req.ReservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, checkIn.ErrInvalidReservationState):
			h.logger.Warn("POST /staff/rentals/check-in - Invalid reservation state: reservation_id=%v, error=%v",
				req.ReservationID, err)
			handlers.RespondConflict(w, msgInvalidReservationState)

		case errors.Is(err, checkIn.ErrVehicleNotFound):
			h.logger.Warn("POST /staff/rentals/check-in - Vehicle not found: vehicle_id=%d", req.VehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, checkIn.ErrVehicleUnavailable):
			h.logger.Warn("POST /staff/rentals/check-in - Vehicle unavailable: vehicle_id=%d", req.VehicleID)
			handlers.RespondConflict(w, msgVehicleUnavailable)

		case errors.Is(err, checkIn.ErrInvalidInput):
			h.logger.Warn("POST /staff/rentals/check-in - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /staff/rentals/check-in - Failed to check in: renter_id=%d, vehicle_id=%d, error=%v",
				req.RenterID, req.VehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /staff/rentals/check-in - Rental created successfully: rental_id=%d, vehicle_id=%d",
		result.ID, result.VehicleID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
