package courier_location_post

import (
	"encoding/json"
	"net/http"
	"strconv"

	"dispatch/pkg/logger"
)

type locationRequest struct {
	CourierID int64   `json:"courier_id"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
}

type Handler struct {
	log      handlerLogger
	producer JobProducer
	topic    string
}

func New(log handlerLogger, producer JobProducer, topic string) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:      handlerLog,
		producer: producer,
		topic:    topic,
	}
}

// ServeHTTP принимает репорт координат и ставит его в очередь заданий;
// геозона и сэмплы считаются консьюмером.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req locationRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if req.CourierID == 0 {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	key := strconv.FormatInt(req.CourierID, 10)
	if err := h.producer.Enqueue(h.topic, key, req); err != nil {
		h.log.With(
			logger.NewField("courier", req.CourierID),
			logger.NewField("error", err),
		).Error("failed to enqueue location update")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}
