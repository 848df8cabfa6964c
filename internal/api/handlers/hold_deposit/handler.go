package hold_deposit

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
	msgInvalidTransition  = "депозит нельзя удержать в текущем статусе аренды"
	msgAlreadyHeld        = "депозит по аренде уже удержан"
	msgInvalidInput       = "некорректная сумма депозита"
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

// Handle POST /api/v1/staff/rentals/{rentalId}/hold-deposit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	rentalID, err := strconv.ParseInt(vars["rentalId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /staff/rentals/{id}/hold-deposit - Invalid rental ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRentalID)
		return
	}

	var req models.HoldDepositRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /staff/rentals/{id}/hold-deposit - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.HoldDeposit(r.Context(), rentalID, &req)
	if err != nil {
		switch {
		case errors.Is(err, rentals.ErrRentalNotFound):
			h.logger.Warn("POST /staff/rentals/{id}/hold-deposit - Rental not found: rental_id=%d", rentalID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rentals.ErrDepositAlreadyHeld):
			h.logger.Warn("POST /staff/rentals/{id}/hold-deposit - Deposit already held: rental_id=%d", rentalID)
			handlers.RespondConflict(w, msgAlreadyHeld)

		case errors.Is(err, rentals.ErrInvalidTransition):
			h.logger.Warn("POST /staff/rentals/{id}/hold-deposit - Invalid transition: rental_id=%d, error=%v",
				rentalID, err)
			handlers.RespondBadRequest(w, msgInvalidTransition)

		case errors.Is(err, rentals.ErrInvalidInput):
			h.logger.Warn("POST /staff/rentals/{id}/hold-deposit - Invalid input: rental_id=%d, error=%v",
				rentalID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /staff/rentals/{id}/hold-deposit - Failed to hold deposit: rental_id=%d, error=%v",
				rentalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /staff/rentals/{id}/hold-deposit - Deposit held successfully: rental_id=%d, outstanding=%d",
		rentalID, result.OutstandingDeposit)
	handlers.RespondJSON(w, http.StatusOK, result)
}
