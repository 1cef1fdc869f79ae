package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderTemplate(t *testing.T) {
	body := "Dear {{customer_name}}, your bill of {{amount}} is due on {{due_date}}."

	t.Run("defaults fill placeholders", func(t *testing.T) {
		out := RenderTemplate(body,
			map[string]string{"customer_name": "Customer", "amount": "₹0.00", "due_date": "today"},
			nil)
		assert.Equal(t, "Dear Customer, your bill of ₹0.00 is due on today.", out)
	})

	t.Run("caller values override defaults", func(t *testing.T) {
		out := RenderTemplate(body,
			map[string]string{"customer_name": "Customer", "amount": "₹0.00", "due_date": "today"},
			map[string]string{"customer_name": "Asha Rao", "amount": "₹1,250.00"})
		assert.Equal(t, "Dear Asha Rao, your bill of ₹1,250.00 is due on today.", out)
	})

	t.Run("unknown placeholders are left visible", func(t *testing.T) {
		out := RenderTemplate("Hello {{name}}, ref {{missing}}",
			nil, map[string]string{"name": "Ravi"})
		assert.Equal(t, "Hello Ravi, ref {{missing}}", out)
	})

	t.Run("no placeholders passes through", func(t *testing.T) {
		out := RenderTemplate("Plain message", nil, map[string]string{"name": "x"})
		assert.Equal(t, "Plain message", out)
	})
}
