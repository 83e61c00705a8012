package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/payrollhq/payroll-backend-go/internal/domain/ratetable"
	"github.com/payrollhq/payroll-backend-go/internal/handler/http/response"
)

type RateTableHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
	Resolve(w http.ResponseWriter, r *http.Request)
}

type rateTableHandlerImpl struct {
	rateTableService ratetable.RateTableService
}

func NewRateTableHandler(rateTableService ratetable.RateTableService) RateTableHandler {
	return &rateTableHandlerImpl{rateTableService: rateTableService}
}

func (h *rateTableHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req ratetable.CreateRateTableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.rateTableService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Rate table created", result)
}

func (h *rateTableHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.rateTableService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *rateTableHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var category *ratetable.Category
	if c := r.URL.Query().Get("category"); c != "" {
		cat := ratetable.Category(c)
		category = &cat
	}
	activeOnly := r.URL.Query().Get("active") == "true"

	result, err := h.rateTableService.List(r.Context(), category, activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *rateTableHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	result, err := h.rateTableService.Approve(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Rate table approved", result)
}

func (h *rateTableHandlerImpl) Deactivate(w http.ResponseWriter, r *http.Request) {
	if err := h.rateTableService.Deactivate(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Rate table deactivated", nil)
}

func (h *rateTableHandlerImpl) Resolve(w http.ResponseWriter, r *http.Request) {
	asOf := time.Now()
	if raw := r.URL.Query().Get("as_of"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.BadRequest(w, "as_of must be in YYYY-MM-DD format", nil)
			return
		}
		asOf = parsed
	}

	result, err := h.rateTableService.ResolveEffective(r.Context(), asOf)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
