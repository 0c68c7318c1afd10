// Package canon turns the surface forms located by the extractors into the
// closed machine vocabulary: 24-hour clock times, canonical frequencies,
// dosages and day counts. Each canonicalizer reports failures through the
// two error kinds below instead of panicking or silently defaulting; the
// orchestrator decides how a failed slot degrades.
package canon

import "errors"

// ErrNoMatch means no supported surface pattern matched the input.
var ErrNoMatch = errors.New("no supported pattern matched")

// ErrOutOfRange means a pattern matched but its value is outside the valid
// domain (hour 25, minute 75).
var ErrOutOfRange = errors.New("value out of range")
