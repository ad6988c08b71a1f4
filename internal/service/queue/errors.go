package queue

import "errors"

var (
	ErrQueueEmpty      = errors.New("no couriers in queue")
	ErrCourierNotFound = errors.New("courier not found")
)
