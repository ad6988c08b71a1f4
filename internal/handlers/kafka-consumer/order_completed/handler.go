package order_completed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"

	ledgerservice "dispatch/internal/service/ledger"
	"dispatch/internal/service/orderstate"
	"dispatch/pkg/logger"
)

type completedEvent struct {
	OrderID string `json:"order_id"`
}

type Handler struct {
	orders                   OrderProvider
	ledgerService            Service
	deadLetterer             DeadLetterer
	log                      handlerLogger
	topic                    string
	messageProcessingTimeout time.Duration
	maxAttempts              int
}

func New(
	log handlerLogger,
	orders OrderProvider,
	ledgerService Service,
	deadLetterer DeadLetterer,
	topic string,
	timeout time.Duration,
	maxAttempts int,
) *Handler {
	return &Handler{
		orders:                   orders,
		ledgerService:            ledgerService,
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
				h.log.Info("order.completed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			h.log.Info("order.completed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	var event completedEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("order.completed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("order.completed processing")

	for attempt := 1; attempt <= h.maxAttempts; attempt++ {
		ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
		err := h.process(ctx, event.OrderID)
		cancel()

		if err == nil {
			msgLog.Info("order.completed: processed")
			sess.MarkMessage(message, "")
			return false
		}

		switch {
		case errors.Is(err, context.Canceled):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.completed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, orderstate.ErrOrderNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.completed handler unknown order, skipping")
			sess.MarkMessage(message, "")
			return false

		case errors.Is(err, ledgerservice.ErrOrderNotFinished):
			// событие обогнало смену статуса, передоставка догонит
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.completed handler order not finished yet")
		default:
			msgLog.With(
				logger.NewField("attempt", attempt),
				logger.NewField("error", err),
			).Warn("order.completed handler failed to process order")
		}
	}

	if err := h.deadLetterer.DeadLetter(h.topic, event.OrderID, message.Value); err != nil {
		msgLog.With(
			logger.NewField("error", err),
		).Error("order.completed handler failed to dead-letter message")
	}
	sess.MarkMessage(message, "")
	return false
}

func (h *Handler) process(ctx context.Context, orderID string) error {
	order, err := h.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	return h.ledgerService.ProcessCompletion(ctx, order)
}
