package confirm_payment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	confirmPayment "github.com/m04kA/SMC-RentalService/internal/usecase/confirm_payment"
)

const (
	msgInvalidRentalID   = "некорректный ID аренды"
	msgNotFound          = "аренда не найдена"
	msgBillNotComputed   = "счет по аренде еще не рассчитан"
	msgAlreadyClosed     = "аренда уже закрыта"
	msgInvalidTransition = "аренда не ожидает оплаты"
)

type Handler struct {
	useCase ConfirmPaymentUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmPaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/staff/rentals/{rentalId}/payment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	rentalID, err := strconv.ParseInt(vars["rentalId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /staff/rentals/{id}/payment - Invalid rental ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRentalID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &confirmPayment.Request{RentalID: rentalID})
	if err != nil {
		switch {
		case errors.Is(err, confirmPayment.ErrRentalNotFound):
			h.logger.Warn("POST /staff/rentals/{id}/payment - Rental not found: rental_id=%d", rentalID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, confirmPayment.ErrAlreadyClosed):
			h.logger.Warn("POST /staff/rentals/{id}/payment - Already closed: rental_id=%d", rentalID)
			handlers.RespondConflict(w, msgAlreadyClosed)

		case errors.Is(err, confirmPayment.ErrBillNotComputed):
			h.logger.Warn("POST /staff/rentals/{id}/payment - Bill not computed: rental_id=%d", rentalID)
			handlers.RespondBadRequest(w, msgBillNotComputed)

		case errors.Is(err, confirmPayment.ErrInvalidTransition):
			h.logger.Warn("POST /staff/rentals/{id}/payment - Invalid transition: rental_id=%d, error=%v",
				rentalID, err)
			handlers.RespondBadRequest(w, msgInvalidTransition)

		default:
			h.logger.Error("POST /staff/rentals/{id}/payment - Failed to confirm payment: rental_id=%d, error=%v",
				rentalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /staff/rentals/{id}/payment - Payment confirmed successfully: rental_id=%d, bill_id=%d",
		rentalID, result.BillID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
