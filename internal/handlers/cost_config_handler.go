package handlers

import (
	"context"
	"net/http"

	"gms-backend/internal/cache"
	"gms-backend/internal/models"
	"gms-backend/internal/repositories"
	"gms-backend/pkg/utils"
)

type CostConfigHandler struct {
	Repo *repositories.CostConfigRepository
}

func NewCostConfigHandler(repo *repositories.CostConfigRepository) *CostConfigHandler {
	return &CostConfigHandler{Repo: repo}
}

func (h *CostConfigHandler) CreateCostConfig(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCostConfigRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, &req) {
		return
	}

	cfg := &models.CostConfig{
		Name:        req.Name,
		GasRate:     req.GasRate,
		AMCCost:     req.AMCCost,
		UtilityTax:  req.UtilityTax,
		AppCharges:  req.AppCharges,
		PenaltyRate: req.PenaltyRate,
	}
	if err := h.Repo.Create(r.Context(), cfg); err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	cache.Invalidate(r.Context(), "cost_configs")
	utils.JSON(w, http.StatusCreated, "Cost config created", cfg)
}

func (h *CostConfigHandler) GetCostConfig(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	cfg, err := h.Repo.Get(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Cost config not found")
		return
	}
	utils.JSON(w, http.StatusOK, "Cost config fetched", cfg)
}

func (h *CostConfigHandler) ListCostConfigs(w http.ResponseWriter, r *http.Request) {
	writeCachedList(w, r, cache.ListKey("cost_configs"), "Cost configs fetched", func(ctx context.Context) (interface{}, error) {
		return h.Repo.List(ctx)
	})
}

// UpdateCostConfig changes rates for future invoices only. Issued invoices
// keep the snapshotted values.
func (h *CostConfigHandler) UpdateCostConfig(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	var req models.CreateCostConfigRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, &req) {
		return
	}

	cfg := &models.CostConfig{
		ID:          id,
		Name:        req.Name,
		GasRate:     req.GasRate,
		AMCCost:     req.AMCCost,
		UtilityTax:  req.UtilityTax,
		AppCharges:  req.AppCharges,
		PenaltyRate: req.PenaltyRate,
	}
	if err := h.Repo.Update(r.Context(), cfg); err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	cache.Invalidate(r.Context(), "cost_configs")
	utils.JSON(w, http.StatusOK, "Cost config updated", cfg)
}

func (h *CostConfigHandler) DeleteCostConfig(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	if err := h.Repo.Delete(r.Context(), id); err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	cache.Invalidate(r.Context(), "cost_configs")
	utils.JSON(w, http.StatusOK, "Cost config deleted", nil)
}
