package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/domain/schedule"
	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ScheduleHandler interface {
	UpsertEntries(w http.ResponseWriter, r *http.Request)
	ListEntries(w http.ResponseWriter, r *http.Request)
	DeleteEntry(w http.ResponseWriter, r *http.Request)
	MonthlyRoster(w http.ResponseWriter, r *http.Request)
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	ListTimeEntries(w http.ResponseWriter, r *http.Request)
}

type ScheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
}

func NewScheduleHandler(scheduleService schedule.ScheduleService) ScheduleHandler {
	return &ScheduleHandlerImpl{scheduleService: scheduleService}
}

// UpsertEntries implements ScheduleHandler.
func (h *ScheduleHandlerImpl) UpsertEntries(w http.ResponseWriter, r *http.Request) {
	var req schedule.UpsertEntriesRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Upsert entries decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	entries, err := h.scheduleService.UpsertEntries(r.Context(), req)
	if err != nil {
		slog.Error("Upsert entries service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule saved successfully", entries)
}

// ListEntries implements ScheduleHandler.
func (h *ScheduleHandlerImpl) ListEntries(w http.ResponseWriter, r *http.Request) {
	filter := schedule.EntryFilter{
		EmployeeID: r.URL.Query().Get("employee_id"),
		Period:     r.URL.Query().Get("period"),
		LocationID: r.URL.Query().Get("location_id"),
	}

	entries, err := h.scheduleService.ListEntries(r.Context(), filter)
	if err != nil {
		slog.Error("List entries service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

// DeleteEntry implements ScheduleHandler.
func (h *ScheduleHandlerImpl) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.scheduleService.DeleteEntry(r.Context(), id); err != nil {
		slog.Error("Delete entry service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule entry deleted successfully", nil)
}

// MonthlyRoster implements ScheduleHandler. Returns the Monday-first month
// grid plus monthly stats for one employee.
func (h *ScheduleHandlerImpl) MonthlyRoster(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employee_id")
	period := r.URL.Query().Get("period")

	roster, err := h.scheduleService.MonthlyRoster(r.Context(), employeeID, period)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, roster)
}

// ClockIn implements ScheduleHandler.
func (h *ScheduleHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	var req schedule.ClockInRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Clock in decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	entry, err := h.scheduleService.ClockIn(r.Context(), req)
	if err != nil {
		slog.Error("Clock in service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Clocked in successfully", entry)
}

// ClockOut implements ScheduleHandler.
func (h *ScheduleHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")

	entry, err := h.scheduleService.ClockOut(r.Context(), employeeID)
	if err != nil {
		slog.Error("Clock out service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clocked out successfully", entry)
}

// ListTimeEntries implements ScheduleHandler.
func (h *ScheduleHandlerImpl) ListTimeEntries(w http.ResponseWriter, r *http.Request) {
	filter := schedule.TimeEntryFilter{
		EmployeeID: r.URL.Query().Get("employee_id"),
		Period:     r.URL.Query().Get("period"),
	}

	entries, err := h.scheduleService.ListTimeEntries(r.Context(), filter)
	if err != nil {
		slog.Error("List time entries service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}
