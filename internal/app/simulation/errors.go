package simulation

import (
	"errors"

	"casino-sim/internal/baccarat"
)

var (
	ErrInvalidRequest  = errors.New("invalid_request")
	ErrRunNotFound     = errors.New("run_not_found")
	ErrUnknownStrategy = baccarat.ErrUnknownStrategy
)
