package order_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/service/dispatch"
	"dispatch/internal/service/orderstate"
	"dispatch/internal/service/pricing"
	"dispatch/pkg/logger"
)

type orderCreateRequest struct {
	ID             string  `json:"id"`
	OrganizationID int64   `json:"organization_id"`
	TerminalID     int64   `json:"terminal_id"`
	CustomerName   string  `json:"customer_name"`
	CustomerPhone  string  `json:"customer_phone"`
	OrderPrice     int64   `json:"order_price"`
	PaymentKind    string  `json:"payment_kind"`
	Vehicle        string  `json:"vehicle,omitempty"`
	DestLat        float64 `json:"dest_lat"`
	DestLon        float64 `json:"dest_lon"`
}

type orderCreateResponse struct {
	ID          string  `json:"id"`
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
	var req orderCreateRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if req.ID == "" || req.OrganizationID == 0 || req.TerminalID == 0 {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	order, err := h.service.CreateOrder(r.Context(), dispatch.CreateOrderInput{
		ID:             req.ID,
		OrganizationID: req.OrganizationID,
		TerminalID:     req.TerminalID,
		CustomerName:   req.CustomerName,
		CustomerPhone:  req.CustomerPhone,
		OrderPrice:     req.OrderPrice,
		PaymentKind:    entities.PaymentKind(req.PaymentKind),
		Vehicle:        entities.VehicleType(req.Vehicle),
		Destination:    entities.Location{Lat: req.DestLat, Lon: req.DestLon},
	})
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrTerminalNotFound):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, pricing.ErrNoEligiblePricing):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, orderstate.ErrOrderAlreadyExists):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := orderCreateResponse{
		ID:          order.ID,
		StatusID:    order.StatusID,
		Price:       order.Price,
		DistanceKm:  order.DistanceKm,
		DurationSec: int64(order.Duration / time.Second),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
