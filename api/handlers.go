/*
handlers.go - HTTP API handlers for the DriveStat earnings service

PURPOSE:
  Exposes shift history, tariff configuration, and period reports over REST.
  Handlers do HTTP plumbing only; every money figure comes out of the
  earnings package.

ENDPOINTS:
  Shifts:
    GET    /api/drivers/{driverID}/shifts              List (with figures)
    POST   /api/drivers/{driverID}/shifts              Add shift
    PUT    /api/drivers/{driverID}/shifts/{shiftID}    Edit shift
    DELETE /api/drivers/{driverID}/shifts/{shiftID}    Delete shift
    DELETE /api/drivers/{driverID}/shifts              Clear history

  Tariff:
    GET    /api/drivers/{driverID}/tariff              Current (or defaults)
    PUT    /api/drivers/{driverID}/tariff              Save wholesale

  Reports:
    GET    /api/drivers/{driverID}/report              Period summary (JSON)
    GET    /api/drivers/{driverID}/report/export       Period summary (XLSX)

REPORT WINDOW:
  ?days=7 selects the relative "last 7 days" window; ?from=...&to=... an
  explicit inclusive range (either bound may be omitted). days wins when
  both are present. An unparseable date behaves as an absent bound - report
  reads degrade rather than reject, matching the engine's philosophy.

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Malformed request body, missing/invalid shift date on writes
  - 404: Shift not found for this driver
  - 500: Storage errors

SECURITY NOTE:
  No authentication; the driverID path segment is trusted. Auth belongs to
  the deployment's gateway, not this service.

SEE ALSO:
  - dto.go: Request/response shapes
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/drivestat/earnings-engine/earnings"
	"github.com/drivestat/earnings-engine/report"
	"github.com/drivestat/earnings-engine/store/sqlite"
)

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store *sqlite.Store

	// Now supplies "today" for relative report windows. Tests inject a
	// fixed clock; production uses time.Now.
	Now func() time.Time
}

// NewHandler creates a new handler with the given store.
func NewHandler(store *sqlite.Store) *Handler {
	return &Handler{Store: store, Now: time.Now}
}

func (h *Handler) today() earnings.Date {
	return earnings.DateOf(h.Now())
}

// =============================================================================
// SHIFTS
// =============================================================================

// ListShifts returns the driver's full history, newest first, with computed
// figures under the driver's current tariff.
func (h *Handler) ListShifts(w http.ResponseWriter, r *http.Request) {
	driverID := chi.URLParam(r, "driverID")

	shifts, err := h.Store.ListShifts(r.Context(), driverID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	tariff, _, err := h.Store.GetTariff(r.Context(), driverID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	dtos := make([]ShiftDTO, 0, len(shifts))
	for _, s := range shifts {
		dtos = append(dtos, toShiftDTO(s, tariff))
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreateShift records a new shift. The ID is minted server-side.
func (h *Handler) CreateShift(w http.ResponseWriter, r *http.Request) {
	driverID := chi.URLParam(r, "driverID")

	var req ShiftRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	shift, err := req.toRecord(uuid.NewString())
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid shift date, expected YYYY-MM-DD"))
		return
	}

	if err := h.Store.AddShift(r.Context(), driverID, shift); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	tariff, _, err := h.Store.GetTariff(r.Context(), driverID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusCreated, toShiftDTO(shift, tariff))
}

// UpdateShift replaces an existing shift's fields.
func (h *Handler) UpdateShift(w http.ResponseWriter, r *http.Request) {
	driverID := chi.URLParam(r, "driverID")
	shiftID := chi.URLParam(r, "shiftID")

	var req ShiftRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	shift, err := req.toRecord(shiftID)
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid shift date, expected YYYY-MM-DD"))
		return
	}

	if err := h.Store.UpdateShift(r.Context(), driverID, shift); err != nil {
		writeStoreError(w, err)
		return
	}
	tariff, _, err := h.Store.GetTariff(r.Context(), driverID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, toShiftDTO(shift, tariff))
}

// DeleteShift removes one shift.
func (h *Handler) DeleteShift(w http.ResponseWriter, r *http.Request) {
	driverID := chi.URLParam(r, "driverID")
	shiftID := chi.URLParam(r, "shiftID")

	if err := h.Store.DeleteShift(r.Context(), driverID, shiftID); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ClearShifts wipes the driver's entire history.
func (h *Handler) ClearShifts(w http.ResponseWriter, r *http.Request) {
	driverID := chi.URLParam(r, "driverID")

	if err := h.Store.ClearShifts(r.Context(), driverID); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// TARIFF
// =============================================================================

// GetTariff returns the driver's tariff, substituting the shipped defaults
// when none was ever saved.
func (h *Handler) GetTariff(w http.ResponseWriter, r *http.Request) {
	driverID := chi.URLParam(r, "driverID")

	tariff, found, err := h.Store.GetTariff(r.Context(), driverID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, toTariffDTO(tariff, found))
}

// SaveTariff replaces the driver's tariff wholesale.
func (h *Handler) SaveTariff(w http.ResponseWriter, r *http.Request) {
	driverID := chi.URLParam(r, "driverID")

	var req TariffRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	tariff := req.toConfig()

	if err := h.Store.SaveTariff(r.Context(), driverID, tariff); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, toTariffDTO(tariff, true))
}

// =============================================================================
// REPORTS
// =============================================================================

// GetReport aggregates the driver's shifts over the requested window.
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	driverID := chi.URLParam(r, "driverID")

	window := h.windowFromQuery(r)
	shifts, tariff, err := h.loadFiltered(r, driverID, window)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, toReportDTO(window, earnings.Aggregate(shifts, tariff)))
}

// ExportReport renders the same aggregation as an XLSX attachment.
func (h *Handler) ExportReport(w http.ResponseWriter, r *http.Request) {
	driverID := chi.URLParam(r, "driverID")

	window := h.windowFromQuery(r)
	shifts, tariff, err := h.loadFiltered(r, driverID, window)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	book, err := report.BuildXLSX(driverID, window, earnings.Aggregate(shifts, tariff), shifts, tariff)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="earnings-report.xlsx"`)
	w.WriteHeader(http.StatusOK)
	w.Write(book)
}

// windowFromQuery builds the reporting window from query parameters.
// ?days=N wins over from/to; unparseable dates act as open bounds.
func (h *Handler) windowFromQuery(r *http.Request) earnings.DateRange {
	q := r.URL.Query()

	if daysParam := q.Get("days"); daysParam != "" {
		if days, err := strconv.Atoi(daysParam); err == nil && days > 0 {
			return earnings.LastDays(days).Resolve(h.today())
		}
	}

	var from, to *earnings.Date
	if d, err := earnings.ParseDate(q.Get("from")); err == nil {
		from = &d
	}
	if d, err := earnings.ParseDate(q.Get("to")); err == nil {
		to = &d
	}
	return earnings.Between(from, to).Resolve(h.today())
}

func (h *Handler) loadFiltered(r *http.Request, driverID string, window earnings.DateRange) ([]earnings.ShiftRecord, earnings.TariffConfig, error) {
	shifts, err := h.Store.ListShifts(r.Context(), driverID)
	if err != nil {
		return nil, earnings.TariffConfig{}, err
	}
	tariff, _, err := h.Store.GetTariff(r.Context(), driverID)
	if err != nil {
		return nil, earnings.TariffConfig{}, err
	}
	return earnings.FilterByPeriod(shifts, window), tariff, nil
}

// =============================================================================
// HEALTH
// =============================================================================

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// =============================================================================
// HTTP HELPERS
// =============================================================================

// decodeBody decodes JSON with UseNumber so numeric fields survive as
// json.Number for the parse-or-zero coercion layer.
func decodeBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	return dec.Decode(dst)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, sqlite.ErrNotFound) {
		writeError(w, http.StatusNotFound, errors.New("shift not found"))
		return
	}
	writeError(w, http.StatusInternalServerError, err)
}
