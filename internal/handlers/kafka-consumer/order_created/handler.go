package order_created

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"

	"dispatch/internal/service/orderstate"
	"dispatch/pkg/logger"
)

type createdEvent struct {
	OrderID string `json:"order_id"`
}

type Handler struct {
	dispatchService          Service
	deadLetterer             DeadLetterer
	log                      handlerLogger
	topic                    string
	messageProcessingTimeout time.Duration
	maxAttempts              int
}

func New(
	log handlerLogger,
	dispatchService Service,
	deadLetterer DeadLetterer,
	topic string,
	timeout time.Duration,
	maxAttempts int,
) *Handler {
	return &Handler{
		dispatchService:          dispatchService,
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
				h.log.Info("order.created: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			h.log.Info("order.created: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение. Возвращает true при
// отмене контекста сессии: сообщение не помечено и будет передоставлено.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	var event createdEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("order.created handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("order.created processing")

	for attempt := 1; attempt <= h.maxAttempts; attempt++ {
		ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
		err := h.dispatchService.AssignFromQueue(ctx, event.OrderID)
		cancel()

		if err == nil {
			msgLog.Info("order.created: processed")
			sess.MarkMessage(message, "")
			return false
		}

		if errors.Is(err, context.Canceled) {
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.created handler context cancelled, message will be reprocessed")
			return true
		}

		if errors.Is(err, orderstate.ErrOrderNotFound) {
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.created handler order missing, skipping")
			sess.MarkMessage(message, "")
			return false
		}

		msgLog.With(
			logger.NewField("attempt", attempt),
			logger.NewField("error", err),
		).Warn("order.created handler failed to process order")
	}

	if err := h.deadLetterer.DeadLetter(h.topic, event.OrderID, message.Value); err != nil {
		msgLog.With(
			logger.NewField("error", err),
		).Error("order.created handler failed to dead-letter message")
	}
	sess.MarkMessage(message, "")
	return false
}
