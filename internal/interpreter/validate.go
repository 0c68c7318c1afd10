package interpreter

import (
	"strings"

	"midosis/pkg/dosistypes"
)

// validate repairs a record in place rather than rejecting it: an
// out-of-range time is cleared, incidental whitespace is stripped from the
// string slots. It never fails.
func validate(cmd *dosistypes.ParsedCommand) {
	if cmd.TimeOfDay != nil && !cmd.TimeOfDay.Valid() {
		cmd.TimeOfDay = nil
	}
	cmd.EntityName = strings.TrimSpace(cmd.EntityName)
	cmd.DosageUnit = strings.TrimSpace(cmd.DosageUnit)
	cmd.Quantity = strings.TrimSpace(cmd.Quantity)
	if cmd.DosageAmount < 0 {
		cmd.DosageAmount = 0
		cmd.DosageUnit = ""
	}
}
