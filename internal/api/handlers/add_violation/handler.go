package add_violation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	"github.com/m04kA/SMC-RentalService/internal/service/rentals"
	"github.com/m04kA/SMC-RentalService/internal/service/rentals/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingStaffID     = "отсутствует ID сотрудника"
	msgNotFound           = "аренда не найдена"
	msgInvalidTransition  = "нарушение нельзя добавить к завершенной аренде"
	msgInvalidInput       = "некорректные данные нарушения"
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

// Handle POST /api/v1/staff/rentals/add-violation
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Автор записи берется из контекста запроса, не из тела
	staffID, ok := middleware.GetStaffID(r.Context())
	if !ok {
		h.logger.Warn("POST /staff/rentals/add-violation - Missing staff ID")
		handlers.RespondUnauthorized(w, msgMissingStaffID)
		return
	}

	var req models.AddViolationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /staff/rentals/add-violation - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.RecordedBy = staffID

	result, err := h.service.AddViolation(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, rentals.ErrRentalNotFound):
			h.logger.Warn("POST /staff/rentals/add-violation - Rental not found: rental_id=%d", req.RentalID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rentals.ErrInvalidTransition):
			h.logger.Warn("POST /staff/rentals/add-violation - Invalid transition: rental_id=%d, error=%v",
				req.RentalID, err)
			handlers.RespondBadRequest(w, msgInvalidTransition)

		case errors.Is(err, rentals.ErrInvalidInput):
			h.logger.Warn("POST /staff/rentals/add-violation - Invalid input: rental_id=%d, error=%v",
				req.RentalID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /staff/rentals/add-violation - Failed to add violation: rental_id=%d, error=%v",
				req.RentalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /staff/rentals/add-violation - Violation added successfully: violation_id=%d, rental_id=%d, staff_id=%d",
		result.ID, req.RentalID, staffID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
