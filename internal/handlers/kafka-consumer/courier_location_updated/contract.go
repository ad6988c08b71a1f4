package courier_location_updated

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

type Service interface {
	ProcessLocation(ctx context.Context, courierID int64, point entities.Location) error
}

type DeadLetterer interface {
	DeadLetter(topic, key string, raw []byte) error
}
