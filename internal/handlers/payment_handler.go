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

type PaymentHandler struct {
	Service *services.BillingService
	Gateway *services.GatewayService
}

func NewPaymentHandler(s *services.BillingService, g *services.GatewayService) *PaymentHandler {
	return &PaymentHandler{Service: s, Gateway: g}
}

func (h *PaymentHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePaymentRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, &req) {
		return
	}

	payment, err := h.Service.RecordPayment(r.Context(), &req)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	cache.Invalidate(r.Context(), "payments")
	cache.Invalidate(r.Context(), "invoices")
	utils.JSON(w, http.StatusCreated, "Payment recorded", payment)
}

func (h *PaymentHandler) GetPayment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	payment, err := h.Service.GetPayment(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Payment not found")
		return
	}
	utils.JSON(w, http.StatusOK, "Payment fetched", payment)
}

func (h *PaymentHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	invoiceIDStr := r.URL.Query().Get("invoice_id")
	if invoiceIDStr == "" {
		writeCachedList(w, r, cache.ListKey("payments"), "Payments fetched", func(ctx context.Context) (interface{}, error) {
			return h.Service.ListPayments(ctx)
		})
		return
	}

	invoiceID, err := strconv.Atoi(invoiceIDStr)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid invoice_id")
		return
	}
	payments, err := h.Service.ListPaymentsByInvoice(r.Context(), invoiceID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, "Payments fetched", payments)
}

// GatewayFeed proxies one page of the gateway's orders, payments or
// settlements list. The entity comes from the path, paging from the query.
func (h *PaymentHandler) GatewayFeed(w http.ResponseWriter, r *http.Request) {
	entity := mux.Vars(r)["entity"]
	count, _ := strconv.Atoi(r.URL.Query().Get("count"))
	skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))

	feed, err := h.Gateway.Feed(entity, count, skip)
	if err != nil {
		utils.Error(w, http.StatusBadGateway, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, "Gateway feed fetched", feed)
}
