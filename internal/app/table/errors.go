package table

import (
	"errors"

	"casino-sim/internal/threecard"
)

var (
	ErrInvalidRequest    = errors.New("invalid_request")
	ErrTableNotFound     = errors.New("table_not_found")
	ErrInsufficientChips = threecard.ErrInsufficientChips
	ErrWrongPhase        = threecard.ErrWrongPhase
)
