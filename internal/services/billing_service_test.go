package services

import (
	"testing"

	"gms-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestComputeBillAmount(t *testing.T) {
	cfg := &models.CostConfig{
		GasRate:    50,
		AMCCost:    100,
		UtilityTax: 18,
		AppCharges: 10,
	}

	t.Run("all components summed", func(t *testing.T) {
		// 12*50 + 100 + 18 + 10 + 25 = 753
		assert.Equal(t, 753.0, ComputeBillAmount(12, cfg, 25))
	})

	t.Run("zero units still charges the fixed components", func(t *testing.T) {
		assert.Equal(t, 128.0, ComputeBillAmount(0, cfg, 0))
	})

	t.Run("rounded to paise", func(t *testing.T) {
		frac := &models.CostConfig{GasRate: 3.333}
		// 10 * 3.333 = 33.33 exactly after rounding
		assert.Equal(t, 33.33, ComputeBillAmount(10, frac, 0))
	})

	t.Run("negative adjustment rounds toward the nearest paise", func(t *testing.T) {
		// 128 - 130.005 = -2.005, rounds to -2.01 not -2.00
		assert.Equal(t, -2.01, ComputeBillAmount(0, cfg, -130.005))
	})

	t.Run("large totals survive rounding", func(t *testing.T) {
		// total*100 here is past int range, where int truncation corrupts
		assert.Equal(t, 1e17, ComputeBillAmount(0, &models.CostConfig{}, 1e17))
	})
}

func TestNextStatus(t *testing.T) {
	t.Run("partial payment", func(t *testing.T) {
		assert.Equal(t, models.InvoicePartiallyPaid, NextStatus(1000, 0, 400))
	})

	t.Run("accumulated partials reach paid", func(t *testing.T) {
		assert.Equal(t, models.InvoicePaid, NextStatus(1000, 600, 400))
	})

	t.Run("overpayment is paid", func(t *testing.T) {
		assert.Equal(t, models.InvoicePaid, NextStatus(1000, 0, 1500))
	})

	t.Run("exact single payment", func(t *testing.T) {
		assert.Equal(t, models.InvoicePaid, NextStatus(750, 0, 750))
	})
}
