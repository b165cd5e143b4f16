package adherence

import "medication-tracker/internal/domain/medications"

// ContainsHour aplica la tabla fija de horas (24h, inclusive):
//
//	morning   5–11
//	afternoon 12–16
//	evening   17–20
//	night     21–23 o 0–4
//
// night cruza la medianoche: se evalúa como disyunción explícita, no como intervalo.
func ContainsHour(slot medications.TimeOfDay, hour int) bool {
	if hour < 0 || hour > 23 {
		return false
	}

	switch slot {
	case medications.Morning:
		return hour >= 5 && hour <= 11
	case medications.Afternoon:
		return hour >= 12 && hour <= 16
	case medications.Evening:
		return hour >= 17 && hour <= 20
	case medications.Night:
		return hour >= 21 || hour <= 4
	default:
		return false
	}
}

// SlotForHour devuelve el slot al que pertenece una hora de reloj local.
func SlotForHour(hour int) (medications.TimeOfDay, bool) {
	for _, slot := range medications.AllSlots() {
		if ContainsHour(slot, hour) {
			return slot, true
		}
	}
	return "", false
}

// LogMatchesSlot usa la hora del timestamp tal como viene;
// convertir a hora local es responsabilidad de quien llama.
func LogMatchesSlot(l medications.Log, slot medications.TimeOfDay) bool {
	return ContainsHour(slot, l.Timestamp.Hour())
}
