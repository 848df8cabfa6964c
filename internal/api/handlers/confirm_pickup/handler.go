package confirm_pickup

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	confirmPickup "github.com/m04kA/SMC-RentalService/internal/usecase/confirm_pickup"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "аренда не найдена"
	msgInvalidTransition  = "аренда не ожидает выдачи"
	msgAlreadyRecorded    = "выдача по аренде уже зафиксирована"
	msgEvidenceIncomplete = "не все evidence-файлы загружены и читаемы"
	msgInvalidInput       = "некорректные данные запроса"
)

type Handler struct {
	useCase ConfirmPickupUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmPickupUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/staff/rentals/confirm-pickup
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ConfirmPickupRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /staff/rentals/confirm-pickup - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, confirmPickup.ErrRentalNotFound):
			h.logger.Warn("POST /staff/rentals/confirm-pickup - Rental not found: rental_id=%d", req.RentalID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, confirmPickup.ErrCheckAlreadyRecorded):
			h.logger.Warn("POST /staff/rentals/confirm-pickup - Check already recorded: rental_id=%d", req.RentalID)
			handlers.RespondConflict(w, msgAlreadyRecorded)

		case errors.Is(err, confirmPickup.ErrInvalidTransition):
			h.logger.Warn("POST /staff/rentals/confirm-pickup - Invalid transition: rental_id=%d, error=%v",
				req.RentalID, err)
			handlers.RespondBadRequest(w, msgInvalidTransition)

		case errors.Is(err, confirmPickup.ErrEvidenceIncomplete):
			h.logger.Warn("POST /staff/rentals/confirm-pickup - Evidence incomplete: rental_id=%d, error=%v",
				req.RentalID, err)
			handlers.RespondBadRequest(w, msgEvidenceIncomplete)

		case errors.Is(err, confirmPickup.ErrInvalidInput):
			h.logger.Warn("POST /staff/rentals/confirm-pickup - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /staff/rentals/confirm-pickup - Failed to confirm pickup: rental_id=%d, error=%v",
				req.RentalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /staff/rentals/confirm-pickup - Pickup confirmed successfully: rental_id=%d, check_id=%d",
		result.RentalID, result.CheckID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
