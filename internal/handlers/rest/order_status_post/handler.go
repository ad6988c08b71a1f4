package order_status_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/service/orderstate"
	"dispatch/pkg/logger"
)

type statusChangeRequest struct {
	OrderID  string `json:"order_id"`
	StatusID int64  `json:"status_id"`
	Actor    string `json:"actor,omitempty"`
}

type statusChangeResponse struct {
	ID       string `json:"id"`
	StatusID int64  `json:"status_id"`
	Finished bool   `json:"finished"`
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
	var req statusChangeRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if req.OrderID == "" || req.StatusID == 0 {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	actor := req.Actor
	if actor == "" {
		actor = "api"
	}

	order, err := h.service.ChangeStatus(r.Context(), req.OrderID, req.StatusID, actor)
	if err != nil {
		switch {
		case errors.Is(err, orderstate.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, orderstate.ErrStatusNotFound):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, orderstate.ErrOrderFinished):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := statusChangeResponse{
		ID:       order.ID,
		StatusID: order.StatusID,
		Finished: order.FinishedAt != nil,
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
