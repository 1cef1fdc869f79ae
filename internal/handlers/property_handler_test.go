package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

func TestHierarchyGetByIDRejectsBadID(t *testing.T) {
	h := &PropertyHandler{}
	router := mux.NewRouter()
	router.HandleFunc("/api/towers/{id}", h.GetTower).Methods(http.MethodGet)
	router.HandleFunc("/api/wings/{id}", h.GetWing).Methods(http.MethodGet)
	router.HandleFunc("/api/floors/{id}", h.GetFloor).Methods(http.MethodGet)
	router.HandleFunc("/api/flats/{id}", h.GetFlat).Methods(http.MethodGet)

	for _, path := range []string{
		"/api/towers/abc",
		"/api/wings/abc",
		"/api/floors/abc",
		"/api/flats/abc",
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
		assert.Equal(t, "Invalid id", decodeResponse(t, rec).Message, path)
	}
}

func TestListTowersRequiresProjectID(t *testing.T) {
	h := &PropertyHandler{}
	req := httptest.NewRequest(http.MethodGet, "/api/towers", nil)
	rec := httptest.NewRecorder()
	h.ListTowers(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "project_id query parameter is required", decodeResponse(t, rec).Message)
}
