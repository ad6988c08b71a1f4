package order_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"

	"dispatch/internal/service/orderstate"
	"dispatch/pkg/logger"
)

type statusEvent struct {
	OrderID  string `json:"order_id"`
	StatusID int64  `json:"status_id"`
	Actor    string `json:"actor"`
}

type Handler struct {
	orderStateService        Service
	deadLetterer             DeadLetterer
	log                      handlerLogger
	topic                    string
	messageProcessingTimeout time.Duration
	maxAttempts              int
}

func New(
	log handlerLogger,
	orderStateService Service,
	deadLetterer DeadLetterer,
	topic string,
	timeout time.Duration,
	maxAttempts int,
) *Handler {
	return &Handler{
		orderStateService:        orderStateService,
		deadLetterer:             deadLetterer,
		log:                      log.With(),
		topic:                    topic,
		messageProcessingTimeout: timeout,
		maxAttempts:              maxAttempts,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("order.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("order.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	var event statusEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("order.status.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("status", event.StatusID),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("order.status.changed processing")

	actor := event.Actor
	if actor == "" {
		actor = "event"
	}

	for attempt := 1; attempt <= h.maxAttempts; attempt++ {
		ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
		order, err := h.orderStateService.ChangeStatus(ctx, event.OrderID, event.StatusID, actor)
		cancel()

		if err == nil {
			h.log.With(
				logger.NewField("order", order.ID),
				logger.NewField("current_status", order.StatusID),
				logger.NewField("offset", message.Offset),
			).Info("order.status.changed: processed")
			sess.MarkMessage(message, "")
			return false
		}

		switch {
		case errors.Is(err, context.Canceled):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.status.changed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, orderstate.ErrOrderNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.status.changed handler unknown order, skipping")
			sess.MarkMessage(message, "")
			return false

		case errors.Is(err, orderstate.ErrStatusNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.status.changed handler unknown status for order, skipping")
			sess.MarkMessage(message, "")
			return false
		}

		msgLog.With(
			logger.NewField("attempt", attempt),
			logger.NewField("error", err),
		).Warn("order.status.changed handler failed to process order")
	}

	if err := h.deadLetterer.DeadLetter(h.topic, event.OrderID, message.Value); err != nil {
		msgLog.With(
			logger.NewField("error", err),
		).Error("order.status.changed handler failed to dead-letter message")
	}
	sess.MarkMessage(message, "")
	return false
}
