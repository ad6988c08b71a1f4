//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_location_post_test
package courier_location_post

import (
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type JobProducer interface {
	Enqueue(topic, key string, payload any) error
}
