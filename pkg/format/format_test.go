package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	t.Run("thousands grouping", func(t *testing.T) {
		assert.Equal(t, "₹1,000.00", FormatCurrency(1000))
	})

	t.Run("indian lakh grouping", func(t *testing.T) {
		assert.Equal(t, "₹1,00,000.00", FormatCurrency(100000))
	})

	t.Run("fractions kept to two places", func(t *testing.T) {
		assert.Equal(t, "₹12.50", FormatCurrency(12.5))
	})

	t.Run("zero", func(t *testing.T) {
		assert.Equal(t, "₹0.00", FormatCurrency(0))
	})
}

func TestFormatCurrencyString(t *testing.T) {
	assert.Equal(t, "₹1,500.00", FormatCurrencyString("1500"))
	assert.Equal(t, "₹0.00", FormatCurrencyString(""))
	assert.Equal(t, "₹0.00", FormatCurrencyString("not a number"))
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2025, time.March, 7, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "07/03/2025", FormatDate(d))
	assert.Equal(t, "07/03/2025 10:30:00", FormatTimestamp(d))
}

func TestBadgeColor(t *testing.T) {
	assert.Equal(t, "green", BadgeColor("PAID"))
	assert.Equal(t, "yellow", BadgeColor("UNPAID"))
	assert.Equal(t, "red", BadgeColor("OVERDUE"))
	assert.Equal(t, "blue", BadgeColor("PARTIALLY_PAID"))
	assert.Equal(t, "gray", BadgeColor("SOMETHING_ELSE"))
}

func TestExtensionForContentType(t *testing.T) {
	assert.Equal(t, ".pdf", ExtensionForContentType("application/pdf"))
	assert.Equal(t, ".csv", ExtensionForContentType("text/csv"))
	assert.Equal(t, ".csv", ExtensionForContentType("text/csv; charset=utf-8"))
	assert.Equal(t, ".xlsx", ExtensionForContentType("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"))

	// Unknown types fall back to .xlsx
	assert.Equal(t, ".xlsx", ExtensionForContentType("application/octet-stream"))
	assert.Equal(t, ".xlsx", ExtensionForContentType(""))
}

func TestFileNameFromDisposition(t *testing.T) {
	assert.Equal(t, "invoices-jan.csv", FileNameFromDisposition(`attachment; filename="invoices-jan.csv"`))
	assert.Equal(t, "report", FileNameFromDisposition(""))
	assert.Equal(t, "report", FileNameFromDisposition("attachment"))
}

func TestDownloadFileName(t *testing.T) {
	t.Run("disposition name wins when it has an extension", func(t *testing.T) {
		name := DownloadFileName(`attachment; filename="monthly.pdf"`, "application/pdf")
		assert.Equal(t, "monthly.pdf", name)
	})

	t.Run("content type supplies missing extension", func(t *testing.T) {
		name := DownloadFileName(`attachment; filename="monthly"`, "application/pdf")
		assert.Equal(t, "monthly.pdf", name)
	})

	t.Run("absent header defaults to report.pdf", func(t *testing.T) {
		name := DownloadFileName("", "application/pdf")
		assert.Equal(t, "report.pdf", name)
	})

	t.Run("unknown content type defaults to report.xlsx", func(t *testing.T) {
		name := DownloadFileName("", "application/octet-stream")
		assert.Equal(t, "report.xlsx", name)
	})
}
