package utils

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseQuantity parses user-typed quantity input. Anything that is not a
// whole number (including an empty string) becomes 0.
func ParseQuantity(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}

// ParseAmount parses user-typed money input. Invalid or empty input becomes 0.
// Accepts thousand separators the way operators paste them ("1 234,50").
func ParseAmount(raw string) decimal.Decimal {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, " ", "")
	if strings.Contains(s, ",") && !strings.Contains(s, ".") {
		s = strings.ReplaceAll(s, ",", ".")
	} else {
		s = strings.ReplaceAll(s, ",", "")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
