package cancel_rental

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/rentals"
)

const (
	msgInvalidRentalID = "некорректный ID аренды"
	msgNotFound        = "аренда не найдена"
	msgCannotCancel    = "аренду нельзя отменить в текущем статусе"
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

// Handle POST /api/v1/staff/rentals/{rentalId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	rentalID, err := strconv.ParseInt(vars["rentalId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /staff/rentals/{id}/cancel - Invalid rental ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRentalID)
		return
	}

	result, err := h.service.Cancel(r.Context(), rentalID)
	if err != nil {
		switch {
		case errors.Is(err, rentals.ErrRentalNotFound):
			h.logger.Warn("POST /staff/rentals/{id}/cancel - Rental not found: rental_id=%d", rentalID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rentals.ErrInvalidTransition):
			h.logger.Warn("POST /staff/rentals/{id}/cancel - Cannot cancel: rental_id=%d, error=%v", rentalID, err)
			handlers.RespondBadRequest(w, msgCannotCancel)

		default:
			h.logger.Error("POST /staff/rentals/{id}/cancel - Failed to cancel rental: rental_id=%d, error=%v",
				rentalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /staff/rentals/{id}/cancel - Rental cancelled successfully: rental_id=%d", rentalID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
