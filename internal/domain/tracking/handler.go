package tracking

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"medication-tracker/internal/domain/adherence"
	"medication-tracker/internal/domain/medications"
	"medication-tracker/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta las rutas relativas a /medications (mismo subrouter que medications).
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/{medicationID}/today", todayHandler(svc))
	r.Get("/{medicationID}/logs", historyHandler(svc))

	r.Route("/{medicationID}/slots/{slot}", func(sr chi.Router) {
		sr.Post("/take", takeHandler(svc))
		sr.Post("/skip", skipHandler(svc))
	})
}

type slotStatusResponse struct {
	Slot   medications.TimeOfDay `json:"slot"`
	Status adherence.Status      `json:"status" enums:"not-applicable,pending,taken,skipped"`
}

// todayResponse es el estado de adherencia de hoy para un medicamento.
type todayResponse struct {
	Medication medications.Response    `json:"medication"`
	Date       string                  `json:"date"` // YYYY-MM-DD local
	Slots      []slotStatusResponse    `json:"slots"`
	Ambiguous  []medications.TimeOfDay `json:"ambiguous_slots,omitempty"`
	Logs       []logResponse           `json:"logs"`
}

type logResponse struct {
	ID           string    `json:"id"`
	MedicationID string    `json:"medication_id"`
	UserID       string    `json:"user_id"`
	Timestamp    time.Time `json:"timestamp"`
	Taken        bool      `json:"taken"`
	Skipped      bool      `json:"skipped"`
	Notes        string    `json:"notes,omitempty"`
}

type recordResponse struct {
	Log          logResponse           `json:"log"`
	Slot         medications.TimeOfDay `json:"slot"`
	SlotMismatch bool                  `json:"slot_mismatch"`
}

type skipRequest struct {
	Reason string `json:"reason"`
}

// todayHandler godoc
// @Summary Estado de hoy
// @Description Devuelve el estado (not-applicable / pending / taken / skipped) de cada momento del día para hoy. En modo estricto, si hay más de un log para un mismo momento responde 409.
// @Tags tracking
// @Produce json
// @Param medicationID path string true "ID del medicamento"
// @Success 200 {object} todayResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "medication not found"
// @Failure 409 {string} string "ambiguous log state"
// @Router /medications/{medicationID}/today [get]
func todayHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		view, err := svc.Today(r.Context(), claims.UserID, chi.URLParam(r, "medicationID"))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toTodayResponse(view))
	}
}

// takeHandler godoc
// @Summary Marcar como tomado
// @Description Registra la toma para el momento del día indicado. Solo se permite si el estado actual es pending. El log guarda la hora actual; si no cae en la franja pedida, `slot_mismatch` es true.
// @Tags tracking
// @Produce json
// @Param medicationID path string true "ID del medicamento"
// @Param slot path string true "Momento del día" Enums(morning, afternoon, evening, night)
// @Success 201 {object} recordResponse
// @Failure 400 {string} string "slot inválido o no configurado"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "medication not found"
// @Failure 409 {string} string "already logged / ambiguous log state"
// @Router /medications/{medicationID}/slots/{slot}/take [post]
func takeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		slot, ok := medications.ParseTimeOfDay(chi.URLParam(r, "slot"))
		if !ok {
			http.Error(w, "invalid time of day", http.StatusBadRequest)
			return
		}

		res, err := svc.MarkTaken(r.Context(), claims.UserID, chi.URLParam(r, "medicationID"), slot)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toRecordResponse(res))
	}
}

// skipHandler godoc
// @Summary Omitir toma
// @Description Registra una omisión con motivo opcional (por defecto "Skipped"). Misma regla que take: solo desde pending.
// @Tags tracking
// @Accept json
// @Produce json
// @Param medicationID path string true "ID del medicamento"
// @Param slot path string true "Momento del día" Enums(morning, afternoon, evening, night)
// @Param payload body skipRequest false "Motivo opcional"
// @Success 201 {object} recordResponse
// @Failure 400 {string} string "invalid json / slot inválido"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "medication not found"
// @Failure 409 {string} string "already logged / ambiguous log state"
// @Router /medications/{medicationID}/slots/{slot}/skip [post]
func skipHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		slot, ok := medications.ParseTimeOfDay(chi.URLParam(r, "slot"))
		if !ok {
			http.Error(w, "invalid time of day", http.StatusBadRequest)
			return
		}

		// body opcional
		var req skipRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		res, err := svc.Skip(r.Context(), claims.UserID, chi.URLParam(r, "medicationID"), slot, req.Reason)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toRecordResponse(res))
	}
}

// historyHandler godoc
// @Summary Historial de logs
// @Description Lista todos los logs del medicamento, más recientes primero.
// @Tags tracking
// @Produce json
// @Param medicationID path string true "ID del medicamento"
// @Success 200 {array} logResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "medication not found"
// @Failure 500 {string} string "internal error"
// @Router /medications/{medicationID}/logs [get]
func historyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		logs, err := svc.History(r.Context(), claims.UserID, chi.URLParam(r, "medicationID"))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		out := make([]logResponse, 0, len(logs))
		for _, l := range logs {
			out = append(out, toLogResponse(l))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func toTodayResponse(v DayView) todayResponse {
	slots := make([]slotStatusResponse, 0, len(v.Statuses))
	for _, st := range v.Statuses.Ordered() {
		slots = append(slots, slotStatusResponse{Slot: st.Slot, Status: st.Status})
	}

	logs := make([]logResponse, 0, len(v.Logs))
	for _, l := range v.Logs {
		logs = append(logs, toLogResponse(l))
	}

	return todayResponse{
		Medication: medications.ToResponse(v.Medication, v.Date),
		Date:       v.Date.Format("2006-01-02"),
		Slots:      slots,
		Ambiguous:  v.Ambiguous,
		Logs:       logs,
	}
}

func toRecordResponse(r RecordResult) recordResponse {
	return recordResponse{
		Log:          toLogResponse(r.Log),
		Slot:         r.Slot,
		SlotMismatch: r.SlotMismatch,
	}
}

func toLogResponse(l medications.Log) logResponse {
	return logResponse{
		ID:           l.ID,
		MedicationID: l.MedicationID,
		UserID:       l.UserID,
		Timestamp:    l.Timestamp,
		Taken:        l.Taken,
		Skipped:      l.Skipped,
		Notes:        l.Notes,
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, medications.ErrNotFound):
		http.Error(w, "medication not found", http.StatusNotFound)
	case errors.Is(err, medications.ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, medications.ErrInvalidSlot), errors.Is(err, medications.ErrInvalidInput), errors.Is(err, ErrSlotNotConfigured):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, adherence.ErrAlreadyLogged), errors.Is(err, adherence.ErrAmbiguousLogState):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
