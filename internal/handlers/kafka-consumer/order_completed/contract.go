package order_completed

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type OrderProvider interface {
	GetByID(ctx context.Context, orderID string) (*entities.Order, error)
}

type Service interface {
	ProcessCompletion(ctx context.Context, order *entities.Order) error
}

type DeadLetterer interface {
	DeadLetter(topic, key string, raw []byte) error
}
