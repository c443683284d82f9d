package geo

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var ErrInvalidAddress = errors.New("invalid address")

// ValidateAddress accepts addresses that look like "street number, city, state":
// at least two comma-separated parts and a digit somewhere.
func ValidateAddress(addr string) error {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return fmt.Errorf("%w: address is empty", ErrInvalidAddress)
	}

	segments := 0
	for _, part := range strings.Split(addr, ",") {
		if strings.TrimSpace(part) != "" {
			segments++
		}
	}
	if segments < 2 {
		return fmt.Errorf("%w: %q must include street and city/state separated by commas", ErrInvalidAddress, addr)
	}
	if !strings.ContainsFunc(addr, unicode.IsDigit) {
		return fmt.Errorf("%w: %q must include a street number", ErrInvalidAddress, addr)
	}
	return nil
}
