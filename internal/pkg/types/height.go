package types

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidHeight is returned when a block height is not a valid non-negative integer.
var ErrInvalidHeight = errors.New("invalid block height")

// Height represents a block height as a non-negative decimal number.
type Height uint64

// HeightFromString parses a decimal block height.
//
// Only plain decimal digits are accepted: signs, whitespace and fractional
// parts are rejected with ErrInvalidHeight.
func HeightFromString(s string) (Height, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHeight, s)
	}

	return Height(v), nil
}

// String returns the decimal representation of the height.
func (h Height) String() string {
	return strconv.FormatUint(uint64(h), 10)
}

// Uint64 returns the height as an unsigned integer.
func (h Height) Uint64() uint64 {
	return uint64(h)
}
