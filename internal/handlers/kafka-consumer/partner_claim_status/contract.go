package partner_claim_status

import (
	"context"

	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	HandlePartnerStatus(ctx context.Context, claimID, statusCode string) error
}

type DeadLetterer interface {
	DeadLetter(topic, key string, raw []byte) error
}
