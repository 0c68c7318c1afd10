package interpreter

// Slot weights. Critical slots (action, entity) dominate the score because
// a command without them cannot be acted on at all.
const (
	criticalWeight  = 0.6
	secondaryWeight = 0.4
)

// foundSlots records which slots the extractors filled, before any default
// filling. Confidence is a pure function of this set.
type foundSlots struct {
	action    bool
	entity    bool
	dosage    bool
	frequency bool
	timeOfDay bool
	duration  bool
}

func score(f foundSlots) float64 {
	critical := 0
	if f.action {
		critical++
	}
	if f.entity {
		critical++
	}

	secondary := 0
	for _, ok := range []bool{f.dosage, f.frequency, f.timeOfDay, f.duration} {
		if ok {
			secondary++
		}
	}

	c := criticalWeight*(float64(critical)/2) + secondaryWeight*(float64(secondary)/4)
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}
