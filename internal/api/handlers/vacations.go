package handlers

import (
	"net/http"

	"github.com/dvergara/Household-Finance-Backend/internal/api/response"
	"github.com/dvergara/Household-Finance-Backend/internal/service"
)

// VacationHandler handles HTTP requests for the vacations rollup.
type VacationHandler struct {
	reportService *service.ReportService
}

// NewVacationHandler creates a new VacationHandler with the provided service dependency.
func NewVacationHandler(reportService *service.ReportService) *VacationHandler {
	return &VacationHandler{
		reportService: reportService,
	}
}

// List handles GET requests to retrieve the yearly vacation rollup, most
// recent year first.
//
// Endpoint: GET /api/vacations
// Response: 200 OK with array of VacationYear
func (h *VacationHandler) List(w http.ResponseWriter, _ *http.Request) {
	response.RespondJSON(w, http.StatusOK, h.reportService.Vacations())
}
