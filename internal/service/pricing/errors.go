package pricing

import "errors"

var (
	ErrNoEligiblePricing = errors.New("no eligible pricing rule")
	ErrTerminalNotFound  = errors.New("terminal not found")
)
