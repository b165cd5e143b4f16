package medications

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"medication-tracker/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta las rutas relativas a /medications.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/", createMedicationHandler(svc))
	r.Get("/", listMedicationsHandler(svc))
	r.Get("/{medicationID}", getMedicationHandler(svc))
	r.Delete("/{medicationID}", deleteMedicationHandler(svc))
}

// createMedicationRequest es el cuerpo para registrar un medicamento.
type createMedicationRequest struct {
	Name         string   `json:"name"`
	Dosage       string   `json:"dosage"`
	Frequency    string   `json:"frequency"`
	TimesOfDay   []string `json:"times_of_day" enums:"morning,afternoon,evening,night"`
	StartDate    string   `json:"start_date"` // YYYY-MM-DD opcional (default hoy)
	EndDate      string   `json:"end_date"`   // YYYY-MM-DD opcional
	Instructions string   `json:"instructions"`
}

// Response representa un medicamento devuelto por la API.
type Response struct {
	ID           string      `json:"id"`
	UserID       string      `json:"user_id"`
	Name         string      `json:"name"`
	Dosage       string      `json:"dosage"`
	Frequency    string      `json:"frequency"`
	TimesOfDay   []TimeOfDay `json:"times_of_day"`
	StartDate    time.Time   `json:"start_date"`
	EndDate      *time.Time  `json:"end_date,omitempty"`
	Instructions string      `json:"instructions,omitempty"`
	Active       bool        `json:"active"`
	CreatedAt    time.Time   `json:"created_at"`
}

// createMedicationHandler godoc
// @Summary Registrar medicamento
// @Description Crea un medicamento del usuario autenticado. Requiere al menos un momento del día. Autenticación: `Authorization: Bearer <token>` o `X-Debug-User-ID` (dev).
// @Tags medications
// @Accept json
// @Produce json
// @Param payload body createMedicationRequest true "Datos del medicamento; fechas en formato YYYY-MM-DD"
// @Success 201 {object} Response
// @Failure 400 {string} string "invalid json / fechas inválidas / reglas de negocio"
// @Failure 401 {string} string "unauthorized"
// @Router /medications [post]
func createMedicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createMedicationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		start, err := parseOptionalDate(req.StartDate)
		if err != nil {
			http.Error(w, "start_date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		end, err := parseOptionalDate(req.EndDate)
		if err != nil {
			http.Error(w, "end_date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		m, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			Name:         req.Name,
			Dosage:       req.Dosage,
			Frequency:    req.Frequency,
			TimesOfDay:   req.TimesOfDay,
			StartDate:    start,
			EndDate:      end,
			Instructions: req.Instructions,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, ToResponse(m, time.Now()))
	}
}

// listMedicationsHandler godoc
// @Summary Listar medicamentos
// @Description Lista los medicamentos del usuario autenticado, en orden de creación.
// @Tags medications
// @Produce json
// @Success 200 {array} Response
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "internal error"
// @Router /medications [get]
func listMedicationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListByOwner(r.Context(), claims.UserID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		now := time.Now()
		out := make([]Response, 0, len(items))
		for _, m := range items {
			out = append(out, ToResponse(m, now))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getMedicationHandler godoc
// @Summary Ver medicamento
// @Tags medications
// @Produce json
// @Param medicationID path string true "ID del medicamento"
// @Success 200 {object} Response
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "medication not found"
// @Router /medications/{medicationID} [get]
func getMedicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		m, err := svc.GetForOwner(r.Context(), claims.UserID, chi.URLParam(r, "medicationID"))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ToResponse(m, time.Now()))
	}
}

// deleteMedicationHandler godoc
// @Summary Borrar medicamento
// @Description Borra el medicamento y todos sus logs. No se puede deshacer.
// @Tags medications
// @Param medicationID path string true "ID del medicamento"
// @Success 204
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "medication not found"
// @Failure 500 {string} string "internal error"
// @Router /medications/{medicationID} [delete]
func deleteMedicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.Delete(r.Context(), claims.UserID, chi.URLParam(r, "medicationID")); err != nil {
			writeServiceError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// ToResponse es exportado para que tracking lo embeba en su vista del día.
func ToResponse(m Medication, now time.Time) Response {
	return Response{
		ID:           m.ID,
		UserID:       m.UserID,
		Name:         m.Name,
		Dosage:       m.Dosage,
		Frequency:    m.Frequency,
		TimesOfDay:   m.Slots(),
		StartDate:    m.StartDate,
		EndDate:      m.EndDate,
		Instructions: m.Instructions,
		Active:       m.IsActiveOn(now),
		CreatedAt:    m.CreatedAt,
	}
}

func parseOptionalDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		http.Error(w, "medication not found", http.StatusNotFound)
	case errors.Is(err, ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrNoSlots), errors.Is(err, ErrInvalidSlot):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
