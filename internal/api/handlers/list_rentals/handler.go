package list_rentals

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/rentals"
)

const (
	msgInvalidParams = "некорректные параметры запроса"
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

// Handle GET /api/v1/staff/rentals
// Query params: renterId, vehicleId, stationPickupId, stationReturnId,
// status, startFrom, startTo (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	params := map[string]string{
		"renterId":        query.Get("renterId"),
		"vehicleId":       query.Get("vehicleId"),
		"stationPickupId": query.Get("stationPickupId"),
		"stationReturnId": query.Get("stationReturnId"),
		"status":          query.Get("status"),
		"startFrom":       query.Get("startFrom"),
		"startTo":         query.Get("startTo"),
	}

	serviceReq, err := ToServiceRequest(params)
	if err != nil {
		h.logger.Warn("GET /staff/rentals - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.List(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, rentals.ErrInvalidInput):
			h.logger.Warn("GET /staff/rentals - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /staff/rentals - Failed to list rentals: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /staff/rentals - Rentals retrieved successfully: count=%d", len(result.Rentals))
	handlers.RespondJSON(w, http.StatusOK, result)
}
