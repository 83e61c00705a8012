package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/payrollhq/payroll-backend-go/internal/domain/employee"
	"github.com/payrollhq/payroll-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
	Activate(w http.ResponseWriter, r *http.Request)

	AddAllowance(w http.ResponseWriter, r *http.Request)
	ListAllowances(w http.ResponseWriter, r *http.Request)
	RemoveAllowance(w http.ResponseWriter, r *http.Request)

	AddDeduction(w http.ResponseWriter, r *http.Request)
	ListDeductions(w http.ResponseWriter, r *http.Request)
	RemoveDeduction(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{employeeService: employeeService}
}

func (h *employeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.employeeService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created", result)
}

func (h *employeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	result, err := h.employeeService.List(r.Context(), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *employeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.employeeService.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *employeeHandlerImpl) Deactivate(w http.ResponseWriter, r *http.Request) {
	if err := h.employeeService.SetActive(r.Context(), chi.URLParam(r, "id"), false); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deactivated", nil)
}

func (h *employeeHandlerImpl) Activate(w http.ResponseWriter, r *http.Request) {
	if err := h.employeeService.SetActive(r.Context(), chi.URLParam(r, "id"), true); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee activated", nil)
}

func (h *employeeHandlerImpl) AddAllowance(w http.ResponseWriter, r *http.Request) {
	var req employee.AllowanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.employeeService.AddAllowance(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Allowance added", result)
}

func (h *employeeHandlerImpl) ListAllowances(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.ListAllowances(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *employeeHandlerImpl) RemoveAllowance(w http.ResponseWriter, r *http.Request) {
	err := h.employeeService.RemoveAllowance(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "allowanceID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Allowance removed", nil)
}

func (h *employeeHandlerImpl) AddDeduction(w http.ResponseWriter, r *http.Request) {
	var req employee.DeductionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.employeeService.AddDeduction(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Deduction added", result)
}

func (h *employeeHandlerImpl) ListDeductions(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.ListDeductions(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *employeeHandlerImpl) RemoveDeduction(w http.ResponseWriter, r *http.Request) {
	err := h.employeeService.RemoveDeduction(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "deductionID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Deduction removed", nil)
}
