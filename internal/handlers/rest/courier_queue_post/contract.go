//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_queue_post_test
package courier_queue_post

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
	Push(ctx context.Context, courierID, terminalID int64, vehicle entities.VehicleType) error
}

type CourierProvider interface {
	GetByID(ctx context.Context, courierID int64) (*entities.Courier, error)
}
