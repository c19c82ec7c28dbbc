package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dvergara/Household-Finance-Backend/internal/api/request"
	"github.com/dvergara/Household-Finance-Backend/internal/api/response"
	"github.com/dvergara/Household-Finance-Backend/internal/apperrors"
	"github.com/dvergara/Household-Finance-Backend/internal/model"
	"github.com/dvergara/Household-Finance-Backend/internal/service"
	"github.com/dvergara/Household-Finance-Backend/internal/validation"
)

// PurchaseHandler handles HTTP requests for online purchase endpoints.
type PurchaseHandler struct {
	reportService   *service.ReportService
	purchaseService *service.PurchaseService
}

// NewPurchaseHandler creates a new PurchaseHandler with the provided service dependencies.
func NewPurchaseHandler(reportService *service.ReportService, purchaseService *service.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{
		reportService:   reportService,
		purchaseService: purchaseService,
	}
}

// List handles GET requests to retrieve purchases matching the query
// filter, in year and file order.
//
// Endpoint: GET /api/purchases
// Response: 200 OK with array of PurchaseRecord
// Error: 400 Bad Request if the filter parameters are invalid
func (h *PurchaseHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := h.parseFilter(w, r)
	if err != nil {
		return
	}

	response.RespondJSON(w, http.StatusOK, h.reportService.Purchases(filter))
}

// Facets handles GET requests to retrieve the distinct stores, years and
// statuses of the loaded purchases.
//
// Endpoint: GET /api/purchases/facets
// Response: 200 OK with PurchaseFacets
func (h *PurchaseHandler) Facets(w http.ResponseWriter, _ *http.Request) {
	response.RespondJSON(w, http.StatusOK, h.reportService.PurchaseFacets())
}

// Summary handles GET requests to compute the headline figures for the
// filtered purchase view.
//
// Endpoint: GET /api/purchases/summary
// Response: 200 OK with PurchaseSummary
// Error: 400 Bad Request if the filter parameters are invalid
func (h *PurchaseHandler) Summary(w http.ResponseWriter, r *http.Request) {
	filter, err := h.parseFilter(w, r)
	if err != nil {
		return
	}

	response.RespondJSON(w, http.StatusOK, h.reportService.PurchaseSummary(filter))
}

// Create handles POST requests to add a user purchase. New purchases start
// out pending.
//
// Endpoint: POST /api/purchases
// Request Body: CreatePurchaseRequest (product, date, store, price, priceWithoutDiscount)
// Response: 201 Created with PurchaseRecord
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if persisting fails
func (h *PurchaseHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreatePurchaseRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreatePurchase(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	record, err := h.purchaseService.Add(r.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidDate) {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidDate.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToSavePurchases.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, record)
}

// ToggleStatus handles POST requests to flip a purchase between pending and
// received. Orders marked as never arrived cannot be toggled.
//
// Endpoint: POST /api/purchases/{purchaseId}/status
// Response: 200 OK with the updated PurchaseRecord
// Error: 404 Not Found if the purchase does not exist
// Error: 409 Conflict if the status cannot be toggled
// Error: 500 Internal Server Error if persisting fails
func (h *PurchaseHandler) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "purchaseId")

	record, err := h.purchaseService.ToggleStatus(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrPurchaseNotFound):
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPurchaseNotFound.Error(), err.Error())
		case errors.Is(err, apperrors.ErrStatusNotToggleable):
			response.RespondError(w, http.StatusConflict, apperrors.ErrStatusNotToggleable.Error(), err.Error())
		default:
			response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToSavePurchases.Error(), err.Error())
		}
		return
	}

	response.RespondJSON(w, http.StatusOK, record)
}

// Delete handles DELETE requests to remove a purchase.
//
// Endpoint: DELETE /api/purchases/{purchaseId}
// Response: 204 No Content
// Error: 404 Not Found if the purchase does not exist
// Error: 500 Internal Server Error if persisting fails
func (h *PurchaseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "purchaseId")

	if err := h.purchaseService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrPurchaseNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPurchaseNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToSavePurchases.Error(), err.Error())
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

// Export handles GET requests to download one year's purchases in the
// source CSV shape.
//
// Endpoint: GET /api/purchases/export?year=YYYY
// Response: 200 OK with text/csv content
// Error: 400 Bad Request if the year is missing or invalid
func (h *PurchaseHandler) Export(w http.ResponseWriter, r *http.Request) {
	filter, err := request.ParsePurchaseFilter(r.URL.Query())
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid filter", err.Error())
		return
	}

	data, err := h.reportService.ExportPurchases(filter.Year)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidYear.Error(), err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%d.csv", filter.Year))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		return
	}
}

func (h *PurchaseHandler) parseFilter(w http.ResponseWriter, r *http.Request) (model.PurchaseFilter, error) {
	filter, err := request.ParsePurchaseFilter(r.URL.Query())
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid filter", err.Error())
		return filter, err
	}
	return filter, nil
}
