package handlers

import (
	"net/http"

	"gms-backend/internal/models"
	"gms-backend/internal/services"
	"gms-backend/pkg/utils"
)

type SmsHandler struct {
	Service *services.NotificationService
}

func NewSmsHandler(s *services.NotificationService) *SmsHandler {
	return &SmsHandler{Service: s}
}

// SendSms renders the chosen template for a customer and dispatches it.
func (h *SmsHandler) SendSms(w http.ResponseWriter, r *http.Request) {
	var req models.SendSmsRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, &req) {
		return
	}

	if err := h.Service.SendTemplated(r.Context(), &req); err != nil {
		utils.Error(w, http.StatusBadGateway, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, "SMS sent", nil)
}

func (h *SmsHandler) ListSmsLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := h.Service.ListLogs(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, "SMS logs fetched", logs)
}
