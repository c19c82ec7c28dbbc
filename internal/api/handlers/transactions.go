package handlers

import (
	"net/http"

	"github.com/dvergara/Household-Finance-Backend/internal/api/request"
	"github.com/dvergara/Household-Finance-Backend/internal/api/response"
	"github.com/dvergara/Household-Finance-Backend/internal/model"
	"github.com/dvergara/Household-Finance-Backend/internal/service"
	"github.com/dvergara/Household-Finance-Backend/internal/validation"
)

// TransactionHandler handles HTTP requests for transaction endpoints.
// It serves as the HTTP layer adapter, parsing the query filter and
// delegating to the report service.
type TransactionHandler struct {
	reportService *service.ReportService
}

// NewTransactionHandler creates a new TransactionHandler with the provided service dependency.
func NewTransactionHandler(reportService *service.ReportService) *TransactionHandler {
	return &TransactionHandler{
		reportService: reportService,
	}
}

// List handles GET requests to retrieve transactions matching the query
// filter, newest first.
//
// Endpoint: GET /api/transactions
// Response: 200 OK with array of Transaction
// Error: 400 Bad Request if the filter parameters are invalid
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := h.parseFilter(w, r)
	if err != nil {
		return
	}

	response.RespondJSON(w, http.StatusOK, h.reportService.Transactions(filter))
}

// Facets handles GET requests to retrieve the distinct accounts,
// categories and date span of the loaded data.
//
// Endpoint: GET /api/transactions/facets
// Response: 200 OK with TransactionFacets
func (h *TransactionHandler) Facets(w http.ResponseWriter, _ *http.Request) {
	response.RespondJSON(w, http.StatusOK, h.reportService.TransactionFacets())
}

// Summary handles GET requests to compute the full aggregation for the
// filtered view: KPIs, rollups, keyword averages, salaries, top and
// recurring expenses, and alerts.
//
// Endpoint: GET /api/transactions/summary
// Response: 200 OK with Summary
// Error: 400 Bad Request if the filter parameters are invalid
func (h *TransactionHandler) Summary(w http.ResponseWriter, r *http.Request) {
	filter, err := h.parseFilter(w, r)
	if err != nil {
		return
	}

	response.RespondJSON(w, http.StatusOK, h.reportService.Summary(filter))
}

// parseFilter reads the query filter, writing the error response itself so
// callers can just bail out on error.
func (h *TransactionHandler) parseFilter(w http.ResponseWriter, r *http.Request) (model.TransactionFilter, error) {
	filter, err := request.ParseTransactionFilter(r.URL.Query())
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid filter", err.Error())
		return filter, err
	}
	if err := validation.ValidateDateRange(filter.DateFrom, filter.DateTo); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid filter", err.Error())
		return filter, err
	}
	return filter, nil
}
