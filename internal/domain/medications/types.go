package medications

import "strings"

// TimeOfDay es uno de los cuatro momentos fijos del día en que se puede programar una toma.
// @Enum morning, afternoon, evening, night
type TimeOfDay string

const (
	Morning   TimeOfDay = "morning"
	Afternoon TimeOfDay = "afternoon"
	Evening   TimeOfDay = "evening"
	Night     TimeOfDay = "night"
)

// canonicalOrder define el orden de render: mañana, tarde, atardecer, noche.
var canonicalOrder = [...]TimeOfDay{Morning, Afternoon, Evening, Night}

// AllSlots devuelve los cuatro slots en orden canónico (copia nueva en cada llamada).
func AllSlots() []TimeOfDay {
	out := make([]TimeOfDay, len(canonicalOrder))
	copy(out, canonicalOrder[:])
	return out
}

func (t TimeOfDay) Valid() bool {
	switch t {
	case Morning, Afternoon, Evening, Night:
		return true
	default:
		return false
	}
}

// ParseTimeOfDay normaliza (trim + lower) y valida.
func ParseTimeOfDay(s string) (TimeOfDay, bool) {
	t := TimeOfDay(strings.ToLower(strings.TrimSpace(s)))
	return t, t.Valid()
}

// OrderedSlots devuelve los slots configurados en orden canónico,
// sin importar el orden en que se eligieron. Duplicados y valores desconocidos se descartan.
func OrderedSlots(set []TimeOfDay) []TimeOfDay {
	out := make([]TimeOfDay, 0, len(canonicalOrder))
	for _, slot := range canonicalOrder {
		for _, s := range set {
			if s == slot {
				out = append(out, slot)
				break
			}
		}
	}
	return out
}
