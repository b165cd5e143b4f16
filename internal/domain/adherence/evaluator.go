// Package adherence deriva el estado de cada slot de un medicamento
// a partir de los logs de un día. Todo es puro: sin I/O ni estado compartido.
package adherence

import (
	"errors"
	"fmt"

	"medication-tracker/internal/domain/medications"
)

// Status de un slot para un día.
// @Enum not-applicable, pending, taken, skipped
type Status string

const (
	StatusNotApplicable Status = "not-applicable"
	StatusPending       Status = "pending"
	StatusTaken         Status = "taken"
	StatusSkipped       Status = "skipped"
)

var (
	// ErrAmbiguousLogState: más de un log coincide con el mismo slot en el mismo día (solo modo estricto).
	ErrAmbiguousLogState = errors.New("ambiguous log state")
	// ErrAlreadyLogged: el slot ya no está pending; taken y skipped son terminales.
	ErrAlreadyLogged = errors.New("already logged for this time of day")
)

type AmbiguousLogStateError struct {
	Slot    medications.TimeOfDay
	Matches int
}

func (e *AmbiguousLogStateError) Error() string {
	return fmt.Sprintf("%s: %d logs match slot %s", ErrAmbiguousLogState, e.Matches, e.Slot)
}

func (e *AmbiguousLogStateError) Unwrap() error { return ErrAmbiguousLogState }

// EvaluateSlotStatus calcula el estado de slot con los logs de "hoy".
// Si varios logs coinciden gana el primero en el orden recibido.
func EvaluateSlotStatus(m medications.Medication, todaysLogs []medications.Log, slot medications.TimeOfDay) Status {
	if !m.HasSlot(slot) {
		return StatusNotApplicable
	}

	for _, l := range todaysLogs {
		if LogMatchesSlot(l, slot) {
			return statusOf(l)
		}
	}
	return StatusPending
}

// EvaluateSlotStatusStrict igual que EvaluateSlotStatus, pero falla con
// *AmbiguousLogStateError si más de un log coincide con el slot.
func EvaluateSlotStatusStrict(m medications.Medication, todaysLogs []medications.Log, slot medications.TimeOfDay) (Status, error) {
	if !m.HasSlot(slot) {
		return StatusNotApplicable, nil
	}

	matches := matchingLogs(todaysLogs, slot)
	switch len(matches) {
	case 0:
		return StatusPending, nil
	case 1:
		return statusOf(matches[0]), nil
	default:
		return "", &AmbiguousLogStateError{Slot: slot, Matches: len(matches)}
	}
}

// SlotStatus es un par slot/estado para render ordenado.
type SlotStatus struct {
	Slot   medications.TimeOfDay
	Status Status
}

// DayStatus tiene una entrada por cada uno de los cuatro slots.
type DayStatus map[medications.TimeOfDay]Status

// Ordered devuelve las entradas en orden canónico.
func (d DayStatus) Ordered() []SlotStatus {
	out := make([]SlotStatus, 0, len(d))
	for _, slot := range medications.AllSlots() {
		if st, ok := d[slot]; ok {
			out = append(out, SlotStatus{Slot: slot, Status: st})
		}
	}
	return out
}

func EvaluateDay(m medications.Medication, todaysLogs []medications.Log) DayStatus {
	out := DayStatus{}
	for _, slot := range medications.AllSlots() {
		out[slot] = EvaluateSlotStatus(m, todaysLogs, slot)
	}
	return out
}

// EvaluateDayStrict falla en el primer slot ambiguo (orden canónico).
func EvaluateDayStrict(m medications.Medication, todaysLogs []medications.Log) (DayStatus, error) {
	out := DayStatus{}
	for _, slot := range medications.AllSlots() {
		st, err := EvaluateSlotStatusStrict(m, todaysLogs, slot)
		if err != nil {
			return nil, err
		}
		out[slot] = st
	}
	return out, nil
}

// AmbiguousSlots lista los slots configurados con más de un log coincidente.
// Pensado para que quien llama registre un warning en modo no estricto.
func AmbiguousSlots(m medications.Medication, todaysLogs []medications.Log) []medications.TimeOfDay {
	var out []medications.TimeOfDay
	for _, slot := range m.Slots() {
		if len(matchingLogs(todaysLogs, slot)) > 1 {
			out = append(out, slot)
		}
	}
	return out
}

// CheckLoggable valida la transición pending -> taken|skipped.
func CheckLoggable(current Status) error {
	if current != StatusPending {
		return fmt.Errorf("%w (status %s)", ErrAlreadyLogged, current)
	}
	return nil
}

func matchingLogs(logs []medications.Log, slot medications.TimeOfDay) []medications.Log {
	var out []medications.Log
	for _, l := range logs {
		if LogMatchesSlot(l, slot) {
			out = append(out, l)
		}
	}
	return out
}

func statusOf(l medications.Log) Status {
	if l.Taken {
		return StatusTaken
	}
	return StatusSkipped
}
