package confirm_return

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	confirmReturn "github.com/m04kA/SMC-RentalService/internal/usecase/confirm_return"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "аренда не найдена"
	msgInvalidTransition  = "транспортное средство по аренде не выдано"
	msgAlreadyRecorded    = "возврат по аренде уже зафиксирован"
	msgEvidenceIncomplete = "не все evidence-файлы загружены и читаемы"
	msgInvalidInput       = "некорректные данные запроса"
)

type Handler struct {
	useCase ConfirmReturnUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmReturnUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/staff/rentals/confirm-return
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ConfirmReturnRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /staff/rentals/confirm-return - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, confirmReturn.ErrRentalNotFound):
			h.logger.Warn("POST /staff/rentals/confirm-return - Rental not found: rental_id=%d", req.RentalID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, confirmReturn.ErrCheckAlreadyRecorded):
			h.logger.Warn("POST /staff/rentals/confirm-return - Check already recorded: rental_id=%d", req.RentalID)
			handlers.RespondConflict(w, msgAlreadyRecorded)

		case errors.Is(err, confirmReturn.ErrInvalidTransition):
			h.logger.Warn("POST /staff/rentals/confirm-return - Invalid transition: rental_id=%d, error=%v",
				req.RentalID, err)
			handlers.RespondBadRequest(w, msgInvalidTransition)

		case errors.Is(err, confirmReturn.ErrEvidenceIncomplete):
			h.logger.Warn("POST /staff/rentals/confirm-return - Evidence incomplete: rental_id=%d, error=%v",
				req.RentalID, err)
			handlers.RespondBadRequest(w, msgEvidenceIncomplete)

		case errors.Is(err, confirmReturn.ErrInvalidInput):
			h.logger.Warn("POST /staff/rentals/confirm-return - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /staff/rentals/confirm-return - Failed to confirm return: rental_id=%d, error=%v",
				req.RentalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /staff/rentals/confirm-return - Return confirmed successfully: rental_id=%d, check_id=%d",
		result.RentalID, result.CheckID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
