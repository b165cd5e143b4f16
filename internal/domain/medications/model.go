package medications

import "time"

// Medication representa el régimen de un medicamento del usuario.
// No existe flujo de edición: una vez creado es inmutable.
type Medication struct {
	ID     string
	UserID string

	Name      string
	Dosage    string // texto libre: "500mg"
	Frequency string // texto libre, no se interpreta

	TimesOfDay []TimeOfDay

	StartDate time.Time
	EndDate   *time.Time

	Instructions string

	CreatedAt time.Time
}

// Slots devuelve los slots configurados en orden canónico.
func (m Medication) Slots() []TimeOfDay {
	return OrderedSlots(m.TimesOfDay)
}

// HasSlot indica si el slot está configurado para este medicamento.
func (m Medication) HasSlot(slot TimeOfDay) bool {
	for _, s := range m.TimesOfDay {
		if s == slot {
			return true
		}
	}
	return false
}

// IsActiveOn compara solo fechas de calendario (en la zona de day).
func (m Medication) IsActiveOn(day time.Time) bool {
	d := dateOnly(day, day.Location())
	if !m.StartDate.IsZero() && d.Before(dateOnly(m.StartDate, day.Location())) {
		return false
	}
	if m.EndDate != nil && d.After(dateOnly(*m.EndDate, day.Location())) {
		return false
	}
	return true
}

func dateOnly(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// Log es un evento de adherencia inmutable: una toma o una omisión.
// Taken y Skipped nunca son true a la vez.
type Log struct {
	ID           string
	MedicationID string
	UserID       string

	Timestamp time.Time

	Taken   bool
	Skipped bool

	Notes string
}
