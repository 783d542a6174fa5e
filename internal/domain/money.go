package domain

import (
	"math"
	"strconv"
	"strings"
)

// Amount is a monetary form value kept exactly as the user typed it.
// Patching never rejects input; normalization happens when the value is read
// for arithmetic. Both "," and "." are accepted as decimal separator, so
// "150", "150.00" and "150,00" are all numerically 150.
type Amount string

// Value parses the amount as NOK. Garbage parses to 0 and negative input is
// clamped to 0, matching the ledger rule that cost fields are non-negative.
func (a Amount) Value() float64 {
	s := strings.TrimSpace(string(a))
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, ",", ".")
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	if n < 0 {
		return 0
	}
	return n
}

// IsZero reports whether the amount is blank or parses to 0.
func (a Amount) IsZero() bool {
	return a.Value() == 0
}
