package config

import (
	"math"
	"strconv"
	"strings"
)

// CoerceInt parses user-supplied numeric input. Anything that is not an
// integer falls back to floor, and values below floor are raised to it.
// Decimal input is truncated.
func CoerceInt(raw string, floor int64) int64 {
	raw = strings.TrimSpace(raw)
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil || math.IsNaN(f) || f > 9e18 || f < -9e18 {
			return floor
		}
		v = int64(f)
	}
	if v < floor {
		return floor
	}
	return v
}
