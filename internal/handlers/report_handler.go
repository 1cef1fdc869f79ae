package handlers

import (
	"fmt"
	"net/http"

	"gms-backend/internal/middleware"
	"gms-backend/internal/models"
	"gms-backend/internal/services"
	"gms-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type ReportHandler struct {
	Service *services.ReportService
}

func NewReportHandler(s *services.ReportService) *ReportHandler {
	return &ReportHandler{Service: s}
}

func (h *ReportHandler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateReportRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, &req) {
		return
	}

	userID, _ := middleware.GetUserIDFromContext(r.Context())
	report, err := h.Service.Generate(r.Context(), &req, userID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusCreated, "Report generated", report)
}

func (h *ReportHandler) ListReports(w http.ResponseWriter, r *http.Request) {
	reports, err := h.Service.List(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, "Reports fetched", reports)
}

// DownloadReport streams the stored artifact. The Content-Type selects the
// extension and the Content-Disposition carries the filename, so clients save
// it without guessing.
func (h *ReportHandler) DownloadReport(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	report, data, err := h.Service.Download(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Report not found")
		return
	}

	w.Header().Set("Content-Type", report.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, report.FileName))
	w.Write(data)
}

func (h *ReportHandler) DeleteReport(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.Service.Delete(r.Context(), id); err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, "Report deleted", nil)
}
