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

// GeoHandler covers cities and localities. These are thin lookup tables, so
// the handler talks to the repositories directly.
type GeoHandler struct {
	CityRepo     *repositories.CityRepository
	LocalityRepo *repositories.LocalityRepository
}

func NewGeoHandler(cityRepo *repositories.CityRepository, localityRepo *repositories.LocalityRepository) *GeoHandler {
	return &GeoHandler{CityRepo: cityRepo, LocalityRepo: localityRepo}
}

func (h *GeoHandler) CreateCity(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCityRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, &req) {
		return
	}

	city := &models.City{Name: req.Name, State: req.State}
	if err := h.CityRepo.Create(r.Context(), city); err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	cache.Invalidate(r.Context(), "cities")
	utils.JSON(w, http.StatusCreated, "City created", city)
}

func (h *GeoHandler) ListCities(w http.ResponseWriter, r *http.Request) {
	writeCachedList(w, r, cache.ListKey("cities"), "Cities fetched", func(ctx context.Context) (interface{}, error) {
		return h.CityRepo.List(ctx)
	})
}

func (h *GeoHandler) GetCity(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	city, err := h.CityRepo.Get(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "City not found")
		return
	}
	utils.JSON(w, http.StatusOK, "City fetched", city)
}

func (h *GeoHandler) UpdateCity(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	var req models.CreateCityRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, &req) {
		return
	}

	city := &models.City{ID: id, Name: req.Name, State: req.State}
	if err := h.CityRepo.Update(r.Context(), city); err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	cache.Invalidate(r.Context(), "cities")
	utils.JSON(w, http.StatusOK, "City updated", city)
}

func (h *GeoHandler) DeleteCity(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	if err := h.CityRepo.Delete(r.Context(), id); err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	cache.Invalidate(r.Context(), "cities")
	utils.JSON(w, http.StatusOK, "City deleted", nil)
}

func (h *GeoHandler) CreateLocality(w http.ResponseWriter, r *http.Request) {
	var req models.CreateLocalityRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, &req) {
		return
	}

	locality := &models.Locality{CityID: req.CityID, Name: req.Name, Pincode: req.Pincode}
	if err := h.LocalityRepo.Create(r.Context(), locality); err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	cache.Invalidate(r.Context(), "localities")
	utils.JSON(w, http.StatusCreated, "Locality created", locality)
}

// ListLocalities optionally filters by city. Only the unfiltered list is
// cached; the city-scoped list is keyed per parent.
func (h *GeoHandler) ListLocalities(w http.ResponseWriter, r *http.Request) {
	cityIDStr := r.URL.Query().Get("city_id")
	if cityIDStr == "" {
		writeCachedList(w, r, cache.ListKey("localities"), "Localities fetched", func(ctx context.Context) (interface{}, error) {
			return h.LocalityRepo.List(ctx)
		})
		return
	}

	cityID, err := strconv.Atoi(cityIDStr)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid city_id")
		return
	}
	writeCachedList(w, r, cache.ScopedListKey("localities", cityID), "Localities fetched", func(ctx context.Context) (interface{}, error) {
		return h.LocalityRepo.ListByCity(ctx, cityID)
	})
}

func (h *GeoHandler) GetLocality(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	locality, err := h.LocalityRepo.Get(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Locality not found")
		return
	}
	utils.JSON(w, http.StatusOK, "Locality fetched", locality)
}

func (h *GeoHandler) UpdateLocality(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	var req models.CreateLocalityRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, &req) {
		return
	}

	locality := &models.Locality{ID: id, CityID: req.CityID, Name: req.Name, Pincode: req.Pincode}
	if err := h.LocalityRepo.Update(r.Context(), locality); err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	cache.Invalidate(r.Context(), "localities")
	utils.JSON(w, http.StatusOK, "Locality updated", locality)
}

func (h *GeoHandler) DeleteLocality(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	if err := h.LocalityRepo.Delete(r.Context(), id); err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	cache.Invalidate(r.Context(), "localities")
	utils.JSON(w, http.StatusOK, "Locality deleted", nil)
}
