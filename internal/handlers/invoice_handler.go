package handlers

import (
	"context"
	"net/http"
	"strconv"

	"gms-backend/internal/cache"
	"gms-backend/internal/models"
	"gms-backend/internal/services"
	"gms-backend/pkg/utils"
)

type InvoiceHandler struct {
	Service      *services.BillingService
	Notification *services.NotificationService
}

func NewInvoiceHandler(s *services.BillingService, n *services.NotificationService) *InvoiceHandler {
	return &InvoiceHandler{Service: s, Notification: n}
}

func (h *InvoiceHandler) GenerateInvoice(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateInvoiceRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, &req) {
		return
	}

	invoice, err := h.Service.GenerateInvoice(r.Context(), &req)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	cache.Invalidate(r.Context(), "invoices")

	// Best effort: a failed SMS never rolls back the invoice.
	if h.Notification != nil {
		_ = h.Notification.SendInvoiceNotice(r.Context(), invoice)
	}
	utils.JSON(w, http.StatusCreated, "Invoice generated", invoice)
}

func (h *InvoiceHandler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	invoice, err := h.Service.GetInvoice(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Invoice not found")
		return
	}
	utils.JSON(w, http.StatusOK, "Invoice fetched", invoice)
}

// ListInvoices serves the invoice table. The unfiltered case joins customer
// display fields; a status filter or customer scope narrows the list.
func (h *InvoiceHandler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	customerIDStr := r.URL.Query().Get("customer_id")

	if customerIDStr != "" {
		customerID, err := strconv.Atoi(customerIDStr)
		if err != nil {
			utils.Error(w, http.StatusBadRequest, "Invalid customer_id")
			return
		}
		invoices, err := h.Service.ListInvoicesByCustomer(r.Context(), customerID)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		utils.JSON(w, http.StatusOK, "Invoices fetched", invoices)
		return
	}

	if status != "" {
		invoices, err := h.Service.ListInvoices(r.Context(), status)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		utils.JSON(w, http.StatusOK, "Invoices fetched", invoices)
		return
	}

	writeCachedList(w, r, cache.ListKey("invoices"), "Invoices fetched", func(ctx context.Context) (interface{}, error) {
		return h.Service.ListInvoicesWithCustomer(ctx)
	})
}

func (h *InvoiceHandler) UpdateInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	var req models.UpdateInvoiceRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, &req) {
		return
	}

	invoice, err := h.Service.UpdateInvoice(r.Context(), id, &req)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	cache.Invalidate(r.Context(), "invoices")
	utils.JSON(w, http.StatusOK, "Invoice updated", invoice)
}

func (h *InvoiceHandler) DeleteInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	if err := h.Service.DeleteInvoice(r.Context(), id); err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	cache.Invalidate(r.Context(), "invoices")
	utils.JSON(w, http.StatusOK, "Invoice deleted", nil)
}

// MarkOverdue is the manual trigger for the same sweep the daily job runs.
func (h *InvoiceHandler) MarkOverdue(w http.ResponseWriter, r *http.Request) {
	count, err := h.Service.MarkOverdueInvoices(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	cache.Invalidate(r.Context(), "invoices")
	utils.JSON(w, http.StatusOK, "Overdue invoices marked", map[string]int64{"updated": count})
}
