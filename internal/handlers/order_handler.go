package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ordersvc/order-total/internal/models"
	"github.com/ordersvc/order-total/internal/service"
)

// OrderHandler handles the compute endpoint
type OrderHandler struct {
	tax *service.TaxService
	log *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(tax *service.TaxService, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		tax: tax,
		log: log,
	}
}

// Compute handles POST /compute. Decode failures and rate-lookup
// failures are domain errors: they come back as 200 with the error
// envelope. Only unexpected internal faults produce a 500.
func (h *OrderHandler) Compute(w http.ResponseWriter, r *http.Request) {
	order, err := models.DecodeOrder(r.Body)
	if err != nil {
		h.log.Warn("failed to decode order", "error", err)
		writeErrorEnvelope(w, http.StatusOK, err.Error(), h.log)
		return
	}

	if err := h.tax.PriceOrder(r.Context(), order); err != nil {
		if errors.Is(err, service.ErrRateUnavailable) {
			message := fmt.Sprintf("The zip code (%s) in the order does not have a corresponding sales tax rate.", order.ShippingZip)
			writeErrorEnvelope(w, http.StatusOK, message, h.log)
			return
		}

		h.log.Error("failed to price order", "order_id", order.OrderID, "error", err)
		writeErrorEnvelope(w, http.StatusInternalServerError, "internal server error", h.log)
		return
	}

	body, err := json.MarshalIndent(order, "", "  ")
	if err != nil {
		h.log.Error("failed to encode order response", "order_id", order.OrderID, "error", err)
		writeErrorEnvelope(w, http.StatusInternalServerError, "internal server error", h.log)
		return
	}

	setCORSHeaders(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		h.log.Error("failed to write order response", "order_id", order.OrderID, "error", err)
	}

	h.log.Info("order priced", "order_id", order.OrderID, "zip", order.ShippingZip, "total", order.Total)
}

// Preflight handles OPTIONS /compute, including bare probes that carry
// no Origin header and so bypass the CORS middleware.
func (h *OrderHandler) Preflight(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)
	w.WriteHeader(http.StatusOK)
}
