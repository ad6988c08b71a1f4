package partner_webhook_post

import (
	"encoding/json"
	"net/http"

	"dispatch/pkg/logger"
)

type webhookRequest struct {
	ClaimID string `json:"claim_id"`
	Status  string `json:"status"`
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

// ServeHTTP вебхук партнера. Отвечаем сразу после постановки в очередь:
// партнер ретраит долгие ответы, а маппинг статуса делает консьюмер.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req webhookRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if req.ClaimID == "" || req.Status == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := h.producer.Enqueue(h.topic, req.ClaimID, req); err != nil {
		h.log.With(
			logger.NewField("claim", req.ClaimID),
			logger.NewField("error", err),
		).Error("failed to enqueue partner status")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}
