package services

import (
	"bytes"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"gms-backend/internal/models"
	"gms-backend/internal/timeutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportBaseName(t *testing.T) {
	assert.Equal(t, "invoices", reportBaseName(models.ReportTypeInvoices))
	assert.Equal(t, "payments", reportBaseName(models.ReportTypePayments))
	assert.Equal(t, "consumption", reportBaseName(models.ReportTypeConsumption))
	assert.Equal(t, "customers", reportBaseName(models.ReportTypeCustomers))
	assert.Equal(t, "report", reportBaseName("SOMETHING"))
}

func TestRenderCSV(t *testing.T) {
	table := &reportTable{
		Title:  "Payments",
		Header: []string{"ID", "Amount", "Method"},
		Rows: [][]string{
			{"1", "₹1,000.00", "UPI"},
			{"2", "₹250.00", "CASH"},
		},
	}

	out, err := renderCSV(table)
	require.NoError(t, err)
	assert.Equal(t, "ID,Amount,Method\n1,\"₹1,000.00\",UPI\n2,₹250.00,CASH\n", string(out))
}

func TestPDFCell(t *testing.T) {
	t.Run("rupee sign becomes Rs prefix", func(t *testing.T) {
		assert.Equal(t, "Rs. 1,000.00", pdfCell("₹1,000.00"))
	})

	t.Run("short cells pass through", func(t *testing.T) {
		assert.Equal(t, "INV-001", pdfCell("INV-001"))
	})

	t.Run("truncates by rune not byte", func(t *testing.T) {
		long := strings.Repeat("é", 30)
		out := pdfCell(long)
		assert.True(t, utf8.ValidString(out))
		assert.Equal(t, strings.Repeat("é", 25)+"...", out)
	})

	t.Run("long ascii is truncated with ellipsis", func(t *testing.T) {
		out := pdfCell(strings.Repeat("a", 40))
		assert.Equal(t, strings.Repeat("a", 25)+"...", out)
	})
}

func TestRenderPDF(t *testing.T) {
	table := &reportTable{
		Title:  "Invoices",
		Header: []string{"Invoice", "Customer", "Amount"},
		Rows:   [][]string{{"INV-001", "Asha Rao", "1000.00"}},
	}

	out, err := renderPDF(table)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestParsePeriod(t *testing.T) {
	t.Run("both bounds", func(t *testing.T) {
		from, to, err := parsePeriod("2025-01-01", "2025-01-31")
		require.NoError(t, err)
		assert.Equal(t, 1, from.Day())
		assert.Equal(t, 0, from.Hour())
		assert.Equal(t, 31, to.Day())
		assert.Equal(t, 23, to.Hour())
		assert.True(t, from.Before(to))
	})

	t.Run("missing bounds widen to everything", func(t *testing.T) {
		from, to, err := parsePeriod("", "")
		require.NoError(t, err)
		assert.True(t, from.IsZero())
		assert.True(t, to.After(timeutil.Now()))
	})

	t.Run("bad date rejected", func(t *testing.T) {
		_, _, err := parsePeriod("01-01-2025", "")
		assert.Error(t, err)
	})
}

func TestInPeriod(t *testing.T) {
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 31, 23, 59, 59, 0, time.UTC)

	assert.True(t, inPeriod(time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC), from, to))
	assert.True(t, inPeriod(from, from, to))
	assert.True(t, inPeriod(to, from, to))
	assert.False(t, inPeriod(time.Date(2024, 12, 31, 23, 0, 0, 0, time.UTC), from, to))
	assert.False(t, inPeriod(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), from, to))
}
