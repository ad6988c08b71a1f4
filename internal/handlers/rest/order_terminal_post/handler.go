package order_terminal_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"dispatch/internal/service/orderstate"
	"dispatch/internal/service/pricing"
	"dispatch/pkg/logger"
)

type reassignRequest struct {
	OrderID    string `json:"order_id"`
	TerminalID int64  `json:"terminal_id"`
}

type reassignResponse struct {
	ID          string  `json:"id"`
	TerminalID  int64   `json:"terminal_id"`
	StatusID    int64   `json:"status_id"`
	Price       int64   `json:"price"`
	DistanceKm  float64 `json:"distance_km"`
	DurationSec int64   `json:"duration_sec"`
}

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req reassignRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if req.OrderID == "" || req.TerminalID == 0 {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	order, err := h.service.ReassignTerminal(r.Context(), req.OrderID, req.TerminalID)
	if err != nil {
		switch {
		case errors.Is(err, orderstate.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, orderstate.ErrOrderFinished):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, pricing.ErrTerminalNotFound):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, pricing.ErrNoEligiblePricing):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := reassignResponse{
		ID:          order.ID,
		TerminalID:  order.TerminalID,
		StatusID:    order.StatusID,
		Price:       order.Price,
		DistanceKm:  order.DistanceKm,
		DurationSec: int64(order.Duration / time.Second),
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
