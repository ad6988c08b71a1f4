package rate_limiter

import "dispatch/pkg/logger"

// Limiter решает, пропускать ли очередной запрос. Сейчас единственная
// реализация — pkg/token_bucket.
type Limiter interface {
	Allow() bool
}

type handlerLogger interface {
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
