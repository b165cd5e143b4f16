package tracking

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"medication-tracker/internal/domain/adherence"
	"medication-tracker/internal/domain/medications"
	"medication-tracker/internal/platform/logger"

	"github.com/google/uuid"
)

var (
	ErrSlotNotConfigured = errors.New("time of day not configured for this medication")
)

const defaultSkipNote = "Skipped"

// MedicationLookup evita importar el servicio concreto de medications.
type MedicationLookup interface {
	GetForOwner(ctx context.Context, ownerUserID, id string) (medications.Medication, error)
}

type Options struct {
	// Strict: si más de un log coincide con un slot, Today falla con adherence.ErrAmbiguousLogState.
	Strict bool

	// Location define el "día" y las horas de reloj. Default time.Local.
	Location *time.Location

	Logger logger.Logger
}

type Service struct {
	repo   Repository
	meds   MedicationLookup
	strict bool
	loc    *time.Location
	log    logger.Logger
	now    func() time.Time
}

func NewService(repo Repository, meds MedicationLookup, opts Options) *Service {
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	lg := opts.Logger
	if lg == nil {
		lg = logger.Nop()
	}
	return &Service{
		repo:   repo,
		meds:   meds,
		strict: opts.Strict,
		loc:    loc,
		log:    lg.With(logger.Fields{"component": "tracking"}),
		now:    time.Now,
	}
}

func (s *Service) Strict() bool { return s.strict }

// DayView es el estado de hoy para un medicamento.
type DayView struct {
	Medication medications.Medication
	Date       time.Time
	Active     bool
	Statuses   adherence.DayStatus
	Logs       []medications.Log

	// Slots con más de un log (solo en modo no estricto; en estricto Today falla).
	Ambiguous []medications.TimeOfDay
}

func (s *Service) Today(ctx context.Context, ownerUserID, medicationID string) (DayView, error) {
	m, err := s.meds.GetForOwner(ctx, ownerUserID, medicationID)
	if err != nil {
		return DayView{}, err
	}
	return s.today(ctx, m)
}

func (s *Service) today(ctx context.Context, m medications.Medication) (DayView, error) {
	now := s.now().In(s.loc)
	start, end := DayBounds(now, s.loc)

	logs, err := s.repo.List(ctx, LogFilter{
		UserID:       m.UserID,
		MedicationID: m.ID,
		From:         &start,
		To:           &end,
	})
	if err != nil {
		// Sin datos = "sin logs hoy"; el evaluador nunca falla por I/O.
		s.log.Warn("load today logs failed", logger.Fields{"medication_id": m.ID, "err": err})
		logs = nil
	}

	// Primer match = el log más antiguo del día, en hora local.
	sort.SliceStable(logs, func(i, j int) bool { return logs[i].Timestamp.Before(logs[j].Timestamp) })
	for i := range logs {
		logs[i].Timestamp = logs[i].Timestamp.In(s.loc)
	}

	view := DayView{
		Medication: m,
		Date:       start,
		Active:     m.IsActiveOn(now),
		Logs:       logs,
	}

	if s.strict {
		st, err := adherence.EvaluateDayStrict(m, logs)
		if err != nil {
			s.log.Error("ambiguous log state", logger.Fields{"medication_id": m.ID, "err": err})
			return DayView{}, err
		}
		view.Statuses = st
		return view, nil
	}

	view.Statuses = adherence.EvaluateDay(m, logs)
	view.Ambiguous = adherence.AmbiguousSlots(m, logs)
	for _, slot := range view.Ambiguous {
		s.log.Warn("multiple logs match slot, using first", logger.Fields{
			"medication_id": m.ID,
			"slot":          string(slot),
			"date":          start.Format("2006-01-02"),
		})
	}
	return view, nil
}

// RecordResult es el log creado por MarkTaken/Skip.
type RecordResult struct {
	Log  medications.Log
	Slot medications.TimeOfDay

	// SlotMismatch: la hora del registro no cae en el slot pedido.
	// El log solo guarda el instante, así que en la evaluación contará para otro slot.
	SlotMismatch bool
}

func (s *Service) MarkTaken(ctx context.Context, ownerUserID, medicationID string, slot medications.TimeOfDay) (RecordResult, error) {
	return s.record(ctx, ownerUserID, medicationID, slot, true, "")
}

// Skip registra una omisión. reason vacío => "Skipped".
func (s *Service) Skip(ctx context.Context, ownerUserID, medicationID string, slot medications.TimeOfDay, reason string) (RecordResult, error) {
	notes := strings.TrimSpace(reason)
	if notes == "" {
		notes = defaultSkipNote
	}
	return s.record(ctx, ownerUserID, medicationID, slot, false, notes)
}

func (s *Service) record(ctx context.Context, ownerUserID, medicationID string, slot medications.TimeOfDay, taken bool, notes string) (RecordResult, error) {
	if !slot.Valid() {
		return RecordResult{}, fmt.Errorf("%w: %q", medications.ErrInvalidSlot, slot)
	}

	m, err := s.meds.GetForOwner(ctx, ownerUserID, medicationID)
	if err != nil {
		return RecordResult{}, err
	}
	if !m.HasSlot(slot) {
		return RecordResult{}, ErrSlotNotConfigured
	}

	view, err := s.today(ctx, m)
	if err != nil {
		return RecordResult{}, err
	}
	if err := adherence.CheckLoggable(view.Statuses[slot]); err != nil {
		return RecordResult{}, err
	}

	now := s.now()
	mismatch := !adherence.ContainsHour(slot, now.In(s.loc).Hour())
	if mismatch {
		// El log solo guarda el instante: se evaluará en el slot que corresponda a su hora.
		s.log.Warn("slot_time_mismatch", logger.Fields{
			"medication_id": m.ID,
			"slot":          string(slot),
			"hour":          now.In(s.loc).Hour(),
		})
	}

	l := medications.Log{
		ID:           uuid.NewString(),
		MedicationID: m.ID,
		UserID:       m.UserID,
		Timestamp:    now,
		Taken:        taken,
		Skipped:      !taken,
		Notes:        notes,
	}

	if err := s.repo.Create(ctx, l); err != nil {
		return RecordResult{}, fmt.Errorf("save medication log: %w", err)
	}

	s.log.Info("medication log recorded", logger.Fields{
		"medication_id": m.ID,
		"slot":          string(slot),
		"taken":         taken,
	})

	return RecordResult{Log: l, Slot: slot, SlotMismatch: mismatch}, nil
}

// History devuelve todos los logs del medicamento, más recientes primero.
func (s *Service) History(ctx context.Context, ownerUserID, medicationID string) ([]medications.Log, error) {
	m, err := s.meds.GetForOwner(ctx, ownerUserID, medicationID)
	if err != nil {
		return nil, err
	}

	logs, err := s.repo.List(ctx, LogFilter{UserID: m.UserID, MedicationID: m.ID})
	if err != nil {
		return nil, fmt.Errorf("list medication logs: %w", err)
	}

	sort.SliceStable(logs, func(i, j int) bool { return logs[i].Timestamp.After(logs[j].Timestamp) })
	return logs, nil
}
