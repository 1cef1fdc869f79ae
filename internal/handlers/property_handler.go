package handlers

import (
	"context"
	"net/http"
	"strconv"

	"gms-backend/internal/cache"
	"gms-backend/internal/models"
	"gms-backend/internal/repositories"
	"gms-backend/pkg/utils"
)

// PropertyHandler covers the Tower -> Wing -> Floor -> Flat hierarchy. Lists
// are always scoped to their parent, so cache keys carry the parent id.
type PropertyHandler struct {
	TowerRepo *repositories.TowerRepository
	WingRepo  *repositories.WingRepository
	FloorRepo *repositories.FloorRepository
	FlatRepo  *repositories.FlatRepository
}

func NewPropertyHandler(
	towerRepo *repositories.TowerRepository,
	wingRepo *repositories.WingRepository,
	floorRepo *repositories.FloorRepository,
	flatRepo *repositories.FlatRepository,
) *PropertyHandler {
	return &PropertyHandler{
		TowerRepo: towerRepo,
		WingRepo:  wingRepo,
		FloorRepo: floorRepo,
		FlatRepo:  flatRepo,
	}
}

func parentID(w http.ResponseWriter, r *http.Request, param string) (int, bool) {
	id, err := strconv.Atoi(r.URL.Query().Get(param))
	if err != nil || id <= 0 {
		utils.Error(w, http.StatusBadRequest, param+" query parameter is required")
		return 0, false
	}
	return id, true
}

// ---- Towers ----

func (h *PropertyHandler) CreateTower(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTowerRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, &req) {
		return
	}

	tower := &models.Tower{ProjectID: req.ProjectID, Name: req.Name}
	if err := h.TowerRepo.Create(r.Context(), tower); err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	cache.Invalidate(r.Context(), "towers")
	utils.JSON(w, http.StatusCreated, "Tower created", tower)
}

func (h *PropertyHandler) ListTowers(w http.ResponseWriter, r *http.Request) {
	projectID, ok := parentID(w, r, "project_id")
	if !ok {
		return
	}
	writeCachedList(w, r, cache.ScopedListKey("towers", projectID), "Towers fetched", func(ctx context.Context) (interface{}, error) {
		return h.TowerRepo.ListByProject(ctx, projectID)
	})
}

func (h *PropertyHandler) GetTower(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	tower, err := h.TowerRepo.Get(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Tower not found")
		return
	}
	utils.JSON(w, http.StatusOK, "Tower fetched", tower)
}

func (h *PropertyHandler) UpdateTower(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	var req models.CreateTowerRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, &req) {
		return
	}

	tower := &models.Tower{ID: id, ProjectID: req.ProjectID, Name: req.Name}
	if err := h.TowerRepo.Update(r.Context(), tower); err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	cache.Invalidate(r.Context(), "towers")
	utils.JSON(w, http.StatusOK, "Tower updated", tower)
}

func (h *PropertyHandler) DeleteTower(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	if err := h.TowerRepo.Delete(r.Context(), id); err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	cache.Invalidate(r.Context(), "towers")
	utils.JSON(w, http.StatusOK, "Tower deleted", nil)
}

// ---- Wings ----

func (h *PropertyHandler) CreateWing(w http.ResponseWriter, r *http.Request) {
	var req models.CreateWingRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, &req) {
		return
	}

	wing := &models.Wing{TowerID: req.TowerID, Name: req.Name}
	if err := h.WingRepo.Create(r.Context(), wing); err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	cache.Invalidate(r.Context(), "wings")
	utils.JSON(w, http.StatusCreated, "Wing created", wing)
}

func (h *PropertyHandler) ListWings(w http.ResponseWriter, r *http.Request) {
	towerID, ok := parentID(w, r, "tower_id")
	if !ok {
		return
	}
	writeCachedList(w, r, cache.ScopedListKey("wings", towerID), "Wings fetched", func(ctx context.Context) (interface{}, error) {
		return h.WingRepo.ListByTower(ctx, towerID)
	})
}

func (h *PropertyHandler) GetWing(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	wing, err := h.WingRepo.Get(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Wing not found")
		return
	}
	utils.JSON(w, http.StatusOK, "Wing fetched", wing)
}

func (h *PropertyHandler) UpdateWing(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	var req models.CreateWingRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, &req) {
		return
	}

	wing := &models.Wing{ID: id, TowerID: req.TowerID, Name: req.Name}
	if err := h.WingRepo.Update(r.Context(), wing); err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	cache.Invalidate(r.Context(), "wings")
	utils.JSON(w, http.StatusOK, "Wing updated", wing)
}

func (h *PropertyHandler) DeleteWing(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	if err := h.WingRepo.Delete(r.Context(), id); err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	cache.Invalidate(r.Context(), "wings")
	utils.JSON(w, http.StatusOK, "Wing deleted", nil)
}

// ---- Floors ----

func (h *PropertyHandler) CreateFloor(w http.ResponseWriter, r *http.Request) {
	var req models.CreateFloorRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, &req) {
		return
	}

	floor := &models.Floor{WingID: req.WingID, Number: req.Number}
	if err := h.FloorRepo.Create(r.Context(), floor); err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	cache.Invalidate(r.Context(), "floors")
	utils.JSON(w, http.StatusCreated, "Floor created", floor)
}

func (h *PropertyHandler) ListFloors(w http.ResponseWriter, r *http.Request) {
	wingID, ok := parentID(w, r, "wing_id")
	if !ok {
		return
	}
	writeCachedList(w, r, cache.ScopedListKey("floors", wingID), "Floors fetched", func(ctx context.Context) (interface{}, error) {
		return h.FloorRepo.ListByWing(ctx, wingID)
	})
}

func (h *PropertyHandler) GetFloor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	floor, err := h.FloorRepo.Get(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Floor not found")
		return
	}
	utils.JSON(w, http.StatusOK, "Floor fetched", floor)
}

func (h *PropertyHandler) UpdateFloor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	var req models.CreateFloorRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, &req) {
		return
	}

	floor := &models.Floor{ID: id, WingID: req.WingID, Number: req.Number}
	if err := h.FloorRepo.Update(r.Context(), floor); err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	cache.Invalidate(r.Context(), "floors")
	utils.JSON(w, http.StatusOK, "Floor updated", floor)
}

func (h *PropertyHandler) DeleteFloor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	if err := h.FloorRepo.Delete(r.Context(), id); err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	cache.Invalidate(r.Context(), "floors")
	utils.JSON(w, http.StatusOK, "Floor deleted", nil)
}

// ---- Flats ----

func (h *PropertyHandler) CreateFlat(w http.ResponseWriter, r *http.Request) {
	var req models.CreateFlatRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, &req) {
		return
	}

	flat := &models.Flat{FloorID: req.FloorID, FlatNumber: req.FlatNumber, Area: req.Area}
	if err := h.FlatRepo.Create(r.Context(), flat); err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	cache.Invalidate(r.Context(), "flats")
	utils.JSON(w, http.StatusCreated, "Flat created", flat)
}

func (h *PropertyHandler) ListFlats(w http.ResponseWriter, r *http.Request) {
	floorID, ok := parentID(w, r, "floor_id")
	if !ok {
		return
	}
	writeCachedList(w, r, cache.ScopedListKey("flats", floorID), "Flats fetched", func(ctx context.Context) (interface{}, error) {
		return h.FlatRepo.ListByFloor(ctx, floorID)
	})
}

func (h *PropertyHandler) GetFlat(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	flat, err := h.FlatRepo.Get(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Flat not found")
		return
	}
	utils.JSON(w, http.StatusOK, "Flat fetched", flat)
}

// GetFlatLocation returns the full tower/wing/floor path for display.
func (h *PropertyHandler) GetFlatLocation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	location, err := h.FlatRepo.GetLocation(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Flat not found")
		return
	}
	utils.JSON(w, http.StatusOK, "Flat location fetched", location)
}

func (h *PropertyHandler) UpdateFlat(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	var req models.CreateFlatRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, &req) {
		return
	}

	flat := &models.Flat{ID: id, FloorID: req.FloorID, FlatNumber: req.FlatNumber, Area: req.Area}
	if err := h.FlatRepo.Update(r.Context(), flat); err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	cache.Invalidate(r.Context(), "flats")
	utils.JSON(w, http.StatusOK, "Flat updated", flat)
}

func (h *PropertyHandler) DeleteFlat(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	if err := h.FlatRepo.Delete(r.Context(), id); err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	cache.Invalidate(r.Context(), "flats")
	utils.JSON(w, http.StatusOK, "Flat deleted", nil)
}
