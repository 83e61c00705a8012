package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/payrollhq/payroll-backend-go/internal/domain/payrun"
	"github.com/payrollhq/payroll-backend-go/internal/handler/http/response"
)

type PayrunHandler interface {
	CalculateBatch(w http.ResponseWriter, r *http.Request)
	Preview(w http.ResponseWriter, r *http.Request)
	GetBatch(w http.ResponseWriter, r *http.Request)
	ListBatches(w http.ResponseWriter, r *http.Request)
	ListPayslips(w http.ResponseWriter, r *http.Request)

	Review(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Lock(w http.ResponseWriter, r *http.Request)
	Remit(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)

	UpdatePayment(w http.ResponseWriter, r *http.Request)
}

type payrunHandlerImpl struct {
	payrunService payrun.PayrunService
}

func NewPayrunHandler(payrunService payrun.PayrunService) PayrunHandler {
	return &payrunHandlerImpl{payrunService: payrunService}
}

func (h *payrunHandlerImpl) CalculateBatch(w http.ResponseWriter, r *http.Request) {
	var req payrun.CalculateBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrunService.CalculateBatch(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if result.Failed > 0 {
		response.SuccessWithMessage(w, "Batch calculation completed with failures", result)
		return
	}

	response.SuccessWithMessage(w, "Batch calculated", result)
}

func (h *payrunHandlerImpl) Preview(w http.ResponseWriter, r *http.Request) {
	var req payrun.PreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrunService.Preview(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrunHandlerImpl) GetBatch(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrunService.GetBatch(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrunHandlerImpl) ListBatches(w http.ResponseWriter, r *http.Request) {
	var status *payrun.BatchStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		s := payrun.BatchStatus(raw)
		if !s.IsValid() {
			response.BadRequest(w, "Invalid batch status", nil)
			return
		}
		status = &s
	}

	result, err := h.payrunService.ListBatches(r.Context(), status)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrunHandlerImpl) ListPayslips(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrunService.ListPayslips(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrunHandlerImpl) decodeTransition(r *http.Request) payrun.TransitionRequest {
	var req payrun.TransitionRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}
	return req
}

func (h *payrunHandlerImpl) Review(w http.ResponseWriter, r *http.Request) {
	req := h.decodeTransition(r)

	result, err := h.payrunService.Review(r.Context(), chi.URLParam(r, "id"), req.Notes)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Batch reviewed", result)
}

func (h *payrunHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	req := h.decodeTransition(r)

	result, err := h.payrunService.Approve(r.Context(), chi.URLParam(r, "id"), req.Notes)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Batch approved", result)
}

func (h *payrunHandlerImpl) Lock(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrunService.Lock(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Batch locked", result)
}

func (h *payrunHandlerImpl) Remit(w http.ResponseWriter, r *http.Request) {
	req := h.decodeTransition(r)

	result, err := h.payrunService.Remit(r.Context(), chi.URLParam(r, "id"), req.Notes)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Batch remitted", result)
}

func (h *payrunHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	req := h.decodeTransition(r)

	result, err := h.payrunService.Cancel(r.Context(), chi.URLParam(r, "id"), req.Notes)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Batch cancelled", result)
}

func (h *payrunHandlerImpl) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	var req payrun.UpdatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrunService.UpdatePayment(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payslip payment updated", result)
}
