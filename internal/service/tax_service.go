package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ordersvc/order-total/internal/models"
	"github.com/ordersvc/order-total/pkg/metrics"
)

// ErrRateUnavailable means no sales-tax rate could be obtained for the
// order's zip code, for any reason: unreachable service, non-200
// answer, or an unparseable rate body.
var ErrRateUnavailable = errors.New("sales tax rate unavailable")

// RateLookup resolves a zip code to a sales-tax rate
type RateLookup interface {
	Rate(ctx context.Context, zip string) (float64, error)
}

// TaxService computes order totals from an external rate lookup
type TaxService struct {
	rates RateLookup
	log   *slog.Logger
}

// NewTaxService creates a new tax service
func NewTaxService(rates RateLookup, log *slog.Logger) *TaxService {
	return &TaxService{
		rates: rates,
		log:   log,
	}
}

// PriceOrder fills in the order's total from the tax rate for its
// shipping zip: total = subtotal * (1 + rate). The multiplication is
// plain floating point; no rounding is applied.
func (s *TaxService) PriceOrder(ctx context.Context, order *models.Order) error {
	rate, err := s.rates.Rate(ctx, order.ShippingZip)
	if err != nil {
		metrics.RateLookupFailures.Inc()
		s.log.Warn("rate lookup failed", "zip", order.ShippingZip, "error", err)
		return fmt.Errorf("%w: %v", ErrRateUnavailable, err)
	}

	order.Total = order.Subtotal * (1.0 + rate)
	return nil
}
