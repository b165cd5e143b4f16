package tracking

import "time"

// DayBounds devuelve [inicio, fin) del día calendario de t en loc.
// Usa AddDate para respetar días de 23/25 horas.
func DayBounds(t time.Time, loc *time.Location) (time.Time, time.Time) {
	if loc == nil {
		loc = time.Local
	}
	t = t.In(loc)
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}
