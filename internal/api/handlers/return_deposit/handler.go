package return_deposit

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/rentals"
	"github.com/m04kA/SMC-RentalService/internal/service/rentals/models"
)

const (
	msgInvalidRentalID    = "некорректный ID аренды"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "аренда не найдена"
	msgNoDepositHeld      = "по аренде нет удержанного депозита"
	msgOverreturn         = "сумма возврата превышает удержанный депозит"
	msgInvalidInput       = "некорректная сумма возврата"
)

type Handler struct {
	service RentalService
	logger  Logger
}

func NewHandler(service RentalService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/staff/rentals/{rentalId}/return-deposit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	rentalID, err := strconv.ParseInt(vars["rentalId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /staff/rentals/{id}/return-deposit - Invalid rental ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRentalID)
		return
	}

	var req models.ReturnDepositRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /staff/rentals/{id}/return-deposit - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.ReturnDeposit(r.Context(), rentalID, &req)
	if err != nil {
		switch {
		case errors.Is(err, rentals.ErrRentalNotFound):
			h.logger.Warn("POST /staff/rentals/{id}/return-deposit - Rental not found: rental_id=%d", rentalID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rentals.ErrNoDepositHeld):
			h.logger.Warn("POST /staff/rentals/{id}/return-deposit - No deposit held: rental_id=%d", rentalID)
			handlers.RespondBadRequest(w, msgNoDepositHeld)

		case errors.Is(err, rentals.ErrDepositOverreturn):
			h.logger.Warn("POST /staff/rentals/{id}/return-deposit - Overreturn: rental_id=%d, error=%v",
				rentalID, err)
			handlers.RespondBadRequest(w, msgOverreturn)

		case errors.Is(err, rentals.ErrInvalidInput):
			h.logger.Warn("POST /staff/rentals/{id}/return-deposit - Invalid input: rental_id=%d, error=%v",
				rentalID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /staff/rentals/{id}/return-deposit - Failed to return deposit: rental_id=%d, error=%v",
				rentalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /staff/rentals/{id}/return-deposit - Deposit returned successfully: rental_id=%d, outstanding=%d",
		rentalID, result.OutstandingDeposit)
	handlers.RespondJSON(w, http.StatusOK, result)
}
