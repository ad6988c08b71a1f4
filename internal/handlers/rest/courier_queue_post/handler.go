package courier_queue_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/entities"
	queueservice "dispatch/internal/service/queue"
	"dispatch/pkg/logger"
)

type checkinRequest struct {
	CourierID  int64  `json:"courier_id"`
	TerminalID int64  `json:"terminal_id"`
	Vehicle    string `json:"vehicle,omitempty"`
}

type Handler struct {
	log      handlerLogger
	service  Service
	couriers CourierProvider
}

func New(log handlerLogger, service Service, couriers CourierProvider) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:      handlerLog,
		service:  service,
		couriers: couriers,
	}
}

// ServeHTTP чекин курьера на смену: постановка в очередь его
// терминального кластера. Тип транспорта по умолчанию берется из
// карточки курьера.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req checkinRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if req.CourierID == 0 || req.TerminalID == 0 {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	vehicle := entities.VehicleType(req.Vehicle)
	if vehicle == "" {
		courier, err := h.couriers.GetByID(r.Context(), req.CourierID)
		if err != nil {
			if errors.Is(err, queueservice.ErrCourierNotFound) {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		vehicle = courier.Vehicle
		if vehicle == "" {
			vehicle = entities.DefaultVehicleType
		}
	}

	if err := h.service.Push(r.Context(), req.CourierID, req.TerminalID, vehicle); err != nil {
		h.log.With(
			logger.NewField("courier", req.CourierID),
			logger.NewField("error", err),
		).Error("failed to push courier to queue")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
