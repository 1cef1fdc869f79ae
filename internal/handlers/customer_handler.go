package handlers

import (
	"context"
	"net/http"

	"gms-backend/internal/cache"
	"gms-backend/internal/middleware"
	"gms-backend/internal/models"
	"gms-backend/internal/services"
	"gms-backend/pkg/utils"
)

type CustomerHandler struct {
	Service *services.CustomerService
}

func NewCustomerHandler(s *services.CustomerService) *CustomerHandler {
	return &CustomerHandler{Service: s}
}

func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCustomerRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, &req) {
		return
	}

	customer, err := h.Service.CreateCustomer(r.Context(), &req)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	cache.Invalidate(r.Context(), "customers")
	utils.JSON(w, http.StatusCreated, "Customer created", customer)
}

func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	customer, err := h.Service.GetCustomer(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Customer not found")
		return
	}
	utils.JSON(w, http.StatusOK, "Customer fetched", customer)
}

// ListCustomers caches only the unfiltered list; search and role filters hit
// the database every time.
func (h *CustomerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	role := r.URL.Query().Get("role")

	if search == "" && role == "" {
		writeCachedList(w, r, cache.ListKey("customers"), "Customers fetched", func(ctx context.Context) (interface{}, error) {
			return h.Service.ListCustomers(ctx, "", "")
		})
		return
	}

	customers, err := h.Service.ListCustomers(r.Context(), search, role)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, "Customers fetched", customers)
}

func (h *CustomerHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	var req models.UpdateCustomerRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, &req) {
		return
	}

	customer, err := h.Service.UpdateCustomer(r.Context(), id, &req)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	cache.Invalidate(r.Context(), "customers")
	utils.JSON(w, http.StatusOK, "Customer updated", customer)
}

// ApproveCustomer sets or clears approval. The response carries the fresh
// record so the caller reconciles against what the server actually stored.
func (h *CustomerHandler) ApproveCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req models.ApproveCustomerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	customer, err := h.Service.Approve(r.Context(), id, actorID, req.Approve)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	cache.Invalidate(r.Context(), "customers")

	message := "Customer approved"
	if !req.Approve {
		message = "Customer approval revoked"
	}
	utils.JSON(w, http.StatusOK, message, customer)
}

func (h *CustomerHandler) ToggleDisabled(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	customer, err := h.Service.ToggleDisabled(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	cache.Invalidate(r.Context(), "customers")
	utils.JSON(w, http.StatusOK, "Customer status updated", customer)
}

func (h *CustomerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	if err := h.Service.DeleteCustomer(r.Context(), id); err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	cache.Invalidate(r.Context(), "customers")
	utils.JSON(w, http.StatusOK, "Customer deleted", nil)
}
