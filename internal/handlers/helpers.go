package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"gms-backend/internal/cache"
	"gms-backend/internal/validation"
	"gms-backend/pkg/utils"

	"github.com/gorilla/mux"
)

func pathID(r *http.Request) (int, error) {
	return strconv.Atoi(mux.Vars(r)["id"])
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// validateRequest rejects the payload before any service call runs.
func validateRequest(w http.ResponseWriter, req interface{}) bool {
	if fields := validation.Check(req); fields != nil {
		utils.ValidationError(w, fields)
		return false
	}
	return true
}

// writeCachedList serves a list endpoint through the Redis cache. The whole
// response envelope is cached, so hits skip both the database and the JSON
// encode. Filtered lists bypass this and hit the repository directly.
func writeCachedList(w http.ResponseWriter, r *http.Request, key, message string, fetch func(ctx context.Context) (interface{}, error)) {
	ctx := r.Context()
	if data, ok := cache.GetList(ctx, key); ok {
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
		return
	}

	items, err := fetch(ctx)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	payload, err := json.Marshal(utils.Response{
		Success:    true,
		StatusCode: http.StatusOK,
		Message:    message,
		Data:       items,
	})
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	cache.SetList(ctx, key, payload)
	w.Header().Set("Content-Type", "application/json")
	w.Write(payload)
}
