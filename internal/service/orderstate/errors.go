package orderstate

import "errors"

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderAlreadyExists = errors.New("order already exists")
	ErrStatusNotFound     = errors.New("status not found in catalog")
	ErrOrderFinished      = errors.New("order already finished")
)
