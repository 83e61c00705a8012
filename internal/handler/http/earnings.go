package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/payrollhq/payroll-backend-go/internal/domain/earnings"
	"github.com/payrollhq/payroll-backend-go/internal/handler/http/response"
	"github.com/payrollhq/payroll-backend-go/internal/pkg/validator"
)

type EarningsHandler interface {
	Record(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	AddOneOffDeduction(w http.ResponseWriter, r *http.Request)
	RemoveOneOffDeduction(w http.ResponseWriter, r *http.Request)
}

type earningsHandlerImpl struct {
	earningsService earnings.EarningsService
}

func NewEarningsHandler(earningsService earnings.EarningsService) EarningsHandler {
	return &earningsHandlerImpl{earningsService: earningsService}
}

func (h *earningsHandlerImpl) Record(w http.ResponseWriter, r *http.Request) {
	var req earnings.RecordEarningRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.earningsService.Record(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *earningsHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	periodStart, okStart := validator.IsValidDate(r.URL.Query().Get("period_start"))
	periodEnd, okEnd := validator.IsValidDate(r.URL.Query().Get("period_end"))
	if !okStart || !okEnd {
		response.BadRequest(w, "period_start and period_end must be valid dates (YYYY-MM-DD)", nil)
		return
	}

	result, err := h.earningsService.ListForPeriod(r.Context(), periodStart, periodEnd)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *earningsHandlerImpl) AddOneOffDeduction(w http.ResponseWriter, r *http.Request) {
	var req earnings.OneOffDeductionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.earningsService.AddOneOffDeduction(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "One-off deduction recorded", result)
}

func (h *earningsHandlerImpl) RemoveOneOffDeduction(w http.ResponseWriter, r *http.Request) {
	if err := h.earningsService.RemoveOneOffDeduction(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "One-off deduction removed", nil)
}
