package handlers

import (
	"context"
	"net/http"
	"strconv"

	"gms-backend/internal/cache"
	"gms-backend/internal/models"
	"gms-backend/internal/services"
	"gms-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type MeterHandler struct {
	Service *services.MeterService
}

func NewMeterHandler(s *services.MeterService) *MeterHandler {
	return &MeterHandler{Service: s}
}

func (h *MeterHandler) CreateMeter(w http.ResponseWriter, r *http.Request) {
	var req models.CreateMeterRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, &req) {
		return
	}

	meter, err := h.Service.CreateMeter(r.Context(), &req)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	cache.Invalidate(r.Context(), "meters")
	utils.JSON(w, http.StatusCreated, "Meter created", meter)
}

func (h *MeterHandler) GetMeter(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	meter, err := h.Service.GetMeter(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Meter not found")
		return
	}
	utils.JSON(w, http.StatusOK, "Meter fetched", meter)
}

func (h *MeterHandler) ListMeters(w http.ResponseWriter, r *http.Request) {
	writeCachedList(w, r, cache.ListKey("meters"), "Meters fetched", func(ctx context.Context) (interface{}, error) {
		return h.Service.ListMeters(ctx)
	})
}

// FilterByProject lists every meter installed under a project's flats.
func (h *MeterHandler) FilterByProject(w http.ResponseWriter, r *http.Request) {
	projectID, err := strconv.Atoi(mux.Vars(r)["projectId"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid project id")
		return
	}
	writeCachedList(w, r, cache.ScopedListKey("meters", projectID), "Meters fetched", func(ctx context.Context) (interface{}, error) {
		return h.Service.ListByProject(ctx, projectID)
	})
}

func (h *MeterHandler) UpdateMeter(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	var req models.UpdateMeterRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, &req) {
		return
	}

	meter, err := h.Service.UpdateMeter(r.Context(), id, &req)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	cache.Invalidate(r.Context(), "meters")
	utils.JSON(w, http.StatusOK, "Meter updated", meter)
}

func (h *MeterHandler) DeleteMeter(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	if err := h.Service.DeleteMeter(r.Context(), id); err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	cache.Invalidate(r.Context(), "meters")
	utils.JSON(w, http.StatusOK, "Meter deleted", nil)
}
