package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"gms-backend/internal/cache"
	"gms-backend/internal/models"
	"gms-backend/internal/services"
	"gms-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type MeterLogHandler struct {
	Service *services.MeterService
}

func NewMeterLogHandler(s *services.MeterService) *MeterLogHandler {
	return &MeterLogHandler{Service: s}
}

// CreateMeterLog accepts multipart form data: the reading fields plus an
// optional "image" file. Units are computed server-side from the previous
// reading; the client-submitted value is never trusted.
func (h *MeterLogHandler) CreateMeterLog(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(services.MaxImageSize + 512*1024); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	meterID, err := strconv.Atoi(r.FormValue("meter_id"))
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid meter_id")
		return
	}
	currentReading, err := strconv.ParseFloat(r.FormValue("current_reading"), 64)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid current_reading")
		return
	}

	req := &models.CreateMeterLogRequest{
		MeterID:        meterID,
		CurrentReading: currentReading,
	}
	if agentStr := r.FormValue("agent_id"); agentStr != "" {
		agentID, err := strconv.Atoi(agentStr)
		if err != nil {
			utils.Error(w, http.StatusBadRequest, "Invalid agent_id")
			return
		}
		req.AgentID = &agentID
	}
	if !validateRequest(w, req) {
		return
	}

	var image []byte
	var imageType string
	if file, header, err := r.FormFile("image"); err == nil {
		defer file.Close()
		if header.Size > services.MaxImageSize {
			utils.Error(w, http.StatusBadRequest, services.ErrImageTooLarge.Error())
			return
		}
		image, err = io.ReadAll(io.LimitReader(file, services.MaxImageSize+1))
		if err != nil {
			utils.Error(w, http.StatusBadRequest, "Failed to read image")
			return
		}
		imageType = header.Header.Get("Content-Type")
	}

	log, err := h.Service.RecordReading(r.Context(), req, image, imageType)
	if err != nil {
		if errors.Is(err, services.ErrImageTooLarge) {
			utils.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	cache.Invalidate(r.Context(), "meter_logs")
	utils.JSON(w, http.StatusCreated, "Meter reading recorded", log)
}

func (h *MeterLogHandler) GetMeterLog(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	log, err := h.Service.GetReading(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Meter log not found")
		return
	}
	utils.JSON(w, http.StatusOK, "Meter log fetched", log)
}

func (h *MeterLogHandler) ListMeterLogs(w http.ResponseWriter, r *http.Request) {
	meterIDStr := r.URL.Query().Get("meter_id")
	if meterIDStr == "" {
		writeCachedList(w, r, cache.ListKey("meter_logs"), "Meter logs fetched", func(ctx context.Context) (interface{}, error) {
			return h.Service.ListReadings(ctx)
		})
		return
	}

	meterID, err := strconv.Atoi(meterIDStr)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid meter_id")
		return
	}
	writeCachedList(w, r, cache.ScopedListKey("meter_logs", meterID), "Meter logs fetched", func(ctx context.Context) (interface{}, error) {
		return h.Service.ListReadingsByMeter(ctx, meterID)
	})
}

// MeterLogImage streams the stored meter photo.
func (h *MeterLogHandler) MeterLogImage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	image, err := h.Service.ReadingImage(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Image not found")
		return
	}
	w.Header().Set("Content-Type", http.DetectContentType(image))
	w.Write(image)
}

func (h *MeterLogHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	status := mux.Vars(r)["status"]
	if status != models.MeterLogValid && status != models.MeterLogInvalid {
		utils.Error(w, http.StatusBadRequest, "Status must be VALID or INVALID")
		return
	}

	log, err := h.Service.MarkReadingStatus(r.Context(), id, status)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	cache.Invalidate(r.Context(), "meter_logs")
	utils.JSON(w, http.StatusOK, "Meter log status updated", log)
}

func (h *MeterLogHandler) DeleteMeterLog(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	if err := h.Service.DeleteReading(r.Context(), id); err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	cache.Invalidate(r.Context(), "meter_logs")
	utils.JSON(w, http.StatusOK, "Meter log deleted", nil)
}
