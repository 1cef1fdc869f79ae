package services

import (
	"testing"

	"gms-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestMessageTypeFor(t *testing.T) {
	assert.Equal(t, models.SMSTypeInvoice, messageTypeFor("INVOICE"))
	assert.Equal(t, models.SMSTypePayment, messageTypeFor("PAYMENT"))
	assert.Equal(t, models.SMSTypeReminder, messageTypeFor("REMINDER"))
	assert.Equal(t, models.SMSTypeGeneral, messageTypeFor("GENERAL"))
	assert.Equal(t, models.SMSTypeGeneral, messageTypeFor(""))

	// Category matching is case-insensitive
	assert.Equal(t, models.SMSTypeInvoice, messageTypeFor("invoice"))
}
