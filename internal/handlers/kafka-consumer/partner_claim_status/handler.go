package partner_claim_status

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"

	"dispatch/internal/service/orderstate"
	"dispatch/pkg/logger"
)

type claimEvent struct {
	ClaimID string `json:"claim_id"`
	Status  string `json:"status"`
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
				h.log.Info("partner.claim.status: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			h.log.Info("partner.claim.status: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	var event claimEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("partner.claim.status handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("claim", event.ClaimID),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("partner.claim.status processing")

	for attempt := 1; attempt <= h.maxAttempts; attempt++ {
		ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
		err := h.dispatchService.HandlePartnerStatus(ctx, event.ClaimID, event.Status)
		cancel()

		if err == nil {
			msgLog.Info("partner.claim.status: processed")
			sess.MarkMessage(message, "")
			return false
		}

		switch {
		case errors.Is(err, context.Canceled):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("partner.claim.status handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, orderstate.ErrOrderNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("partner.claim.status handler no order for claim, skipping")
			sess.MarkMessage(message, "")
			return false
		}

		msgLog.With(
			logger.NewField("attempt", attempt),
			logger.NewField("error", err),
		).Warn("partner.claim.status handler failed to process claim")
	}

	if err := h.deadLetterer.DeadLetter(h.topic, event.ClaimID, message.Value); err != nil {
		msgLog.With(
			logger.NewField("error", err),
		).Error("partner.claim.status handler failed to dead-letter message")
	}
	sess.MarkMessage(message, "")
	return false
}
