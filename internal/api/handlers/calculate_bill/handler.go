package calculate_bill

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	calculateBill "github.com/m04kA/SMC-RentalService/internal/usecase/calculate_bill"
)

const (
	msgInvalidRentalID    = "некорректный ID аренды"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "аренда не найдена"
	msgVehicleNotFound    = "транспортное средство не найдено"
	msgNotBillable        = "счет можно рассчитать только после возврата"
	msgInvalidInput       = "некорректные параметры расчета"
)

type Handler struct {
	useCase CalculateBillUseCase
	logger  Logger
}

func NewHandler(useCase CalculateBillUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/staff/rentals/{rentalId}/bill
// Тело опционально: пустое тело означает расчет с дефолтной единицей
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	rentalID, err := strconv.ParseInt(vars["rentalId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /staff/rentals/{id}/bill - Invalid rental ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRentalID)
		return
	}

	var req CalculateBillRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("POST /staff/rentals/{id}/bill - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &calculateBill.Request{
		RentalID:    rentalID,
		UnitMinutes: req.UnitMinutes,
	})
	if err != nil {
		switch {
		case errors.Is(err, calculateBill.ErrRentalNotFound):
			h.logger.Warn("POST /staff/rentals/{id}/bill - Rental not found: rental_id=%d", rentalID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, calculateBill.ErrVehicleNotFound):
			h.logger.Warn("POST /staff/rentals/{id}/bill - Vehicle not found: rental_id=%d", rentalID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, calculateBill.ErrInvalidTransition):
			h.logger.Warn("POST /staff/rentals/{id}/bill - Not billable: rental_id=%d, error=%v", rentalID, err)
			handlers.RespondBadRequest(w, msgNotBillable)

		case errors.Is(err, calculateBill.ErrInvalidInput):
			h.logger.Warn("POST /staff/rentals/{id}/bill - Invalid input: rental_id=%d, error=%v", rentalID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /staff/rentals/{id}/bill - Failed to calculate bill: rental_id=%d, error=%v",
				rentalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /staff/rentals/{id}/bill - Bill calculated successfully: rental_id=%d, bill_id=%d, total=%d",
		rentalID, result.BillID, result.TotalDue)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
