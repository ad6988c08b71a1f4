//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_terminal_post_test
package order_terminal_post

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
	ReassignTerminal(ctx context.Context, orderID string, terminalID int64) (*entities.Order, error)
}
