package garant

import "errors"

var (
	ErrNoPolicy      = errors.New("courier has no garant policy")
	ErrNoClosedShift = errors.New("courier has no closed shift")
)
