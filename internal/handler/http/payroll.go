package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/domain/payroll"
	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	PaidStatus(w http.ResponseWriter, r *http.Request)
	MarkPaid(w http.ResponseWriter, r *http.Request)
	Payslip(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// PaidStatus implements PayrollHandler.
func (h *PayrollHandlerImpl) PaidStatus(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")

	status, err := h.payrollService.PaidStatus(r.Context(), period)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, status)
}

// MarkPaid implements PayrollHandler.
func (h *PayrollHandlerImpl) MarkPaid(w http.ResponseWriter, r *http.Request) {
	var req payroll.MarkPaidRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Mark paid decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "id")

	record, err := h.payrollService.MarkPaid(r.Context(), req)
	if err != nil {
		slog.Error("Mark paid service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary marked as paid", record)
}

// Payslip implements PayrollHandler. Streams the rendered PDF.
func (h *PayrollHandlerImpl) Payslip(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	period := r.URL.Query().Get("period")

	pdf, err := h.payrollService.PayslipPDF(r.Context(), employeeID, period)
	if err != nil {
		slog.Error("Payslip service error", "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="payslip-%s-%s.pdf"`, employeeID, period))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		slog.Error("Payslip write error", "error", err)
	}
}
