package courier_location_updated

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/IBM/sarama"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type locationEvent struct {
	CourierID int64   `json:"courier_id"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
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
				h.log.Info("courier.location.updated: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			h.log.Info("courier.location.updated: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	var event locationEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("courier.location.updated handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("courier", event.CourierID),
		logger.NewField("offset", message.Offset),
	)

	point := entities.Location{Lat: event.Lat, Lon: event.Lon}

	for attempt := 1; attempt <= h.maxAttempts; attempt++ {
		ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
		err := h.orderStateService.ProcessLocation(ctx, event.CourierID, point)
		cancel()

		if err == nil {
			sess.MarkMessage(message, "")
			return false
		}

		if errors.Is(err, context.Canceled) {
			msgLog.With(
				logger.NewField("error", err),
			).Warn("courier.location.updated handler context cancelled, message will be reprocessed")
			return true
		}

		msgLog.With(
			logger.NewField("attempt", attempt),
			logger.NewField("error", err),
		).Warn("courier.location.updated handler failed to process location")
	}

	key := strconv.FormatInt(event.CourierID, 10)
	if err := h.deadLetterer.DeadLetter(h.topic, key, message.Value); err != nil {
		msgLog.With(
			logger.NewField("error", err),
		).Error("courier.location.updated handler failed to dead-letter message")
	}
	sess.MarkMessage(message, "")
	return false
}
