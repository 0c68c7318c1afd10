package canon

import (
	"fmt"
	"strings"

	"midosis/pkg/dosistypes"
)

// Dosage normalizes an extracted dosage: the amount must be positive and
// incidental whitespace is stripped from the unit. Count units stay counts;
// no conversion to mass happens here.
func Dosage(d dosistypes.Dosage) (dosistypes.Dosage, error) {
	unit := strings.TrimSpace(d.Unit)
	if unit == "" {
		return dosistypes.Dosage{}, ErrNoMatch
	}
	if d.Amount <= 0 {
		return dosistypes.Dosage{}, fmt.Errorf("amount %d: %w", d.Amount, ErrOutOfRange)
	}
	return dosistypes.Dosage{Amount: d.Amount, Unit: unit}, nil
}
