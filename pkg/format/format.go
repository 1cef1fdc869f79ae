// Package format holds the presentation transforms shared by report
// generation and API responses: INR currency strings, dd/mm/yyyy dates,
// status badge colors and download filename rules.
package format

import (
	"mime"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var enIN = message.NewPrinter(language.MustParse("en-IN"))

// FormatCurrency renders an amount as an en-IN INR string: 1000 -> "₹1,000.00".
func FormatCurrency(amount float64) string {
	return enIN.Sprintf("₹%v", number.Decimal(amount,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// FormatCurrencyString parses a numeric string and formats it as INR.
// Empty or unparseable input renders as ₹0.00.
func FormatCurrencyString(s string) string {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		v = 0
	}
	return FormatCurrency(v)
}

// FormatDate renders dd/mm/yyyy.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// FormatTimestamp renders the full timestamp shown in log tables.
func FormatTimestamp(t time.Time) string {
	return t.Format("02/01/2006 15:04:05")
}

// BadgeColor maps a status enum to the badge color the tables use.
func BadgeColor(status string) string {
	switch status {
	case "PAID", "VALID", "CAPTURED", "READY":
		return "green"
	case "UNPAID", "PENDING":
		return "yellow"
	case "OVERDUE", "INVALID", "FAILED":
		return "red"
	case "PARTIALLY_PAID":
		return "blue"
	default:
		return "gray"
	}
}

// ExtensionForContentType maps a download's Content-Type to the saved file
// extension. Unknown types default to .xlsx, matching the report service.
func ExtensionForContentType(contentType string) string {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mt = strings.TrimSpace(strings.ToLower(contentType))
	}
	switch mt {
	case "application/pdf":
		return ".pdf"
	case "text/csv":
		return ".csv"
	case "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":
		return ".xlsx"
	default:
		return ".xlsx"
	}
}

// FileNameFromDisposition extracts the filename from a Content-Disposition
// header, defaulting to "report" when the header is absent or malformed.
func FileNameFromDisposition(disposition string) string {
	if disposition == "" {
		return "report"
	}
	_, params, err := mime.ParseMediaType(disposition)
	if err != nil {
		return "report"
	}
	if name := params["filename"]; name != "" {
		return name
	}
	return "report"
}

// DownloadFileName combines the disposition filename with the content-type
// extension, appending the extension only when the name does not carry one.
func DownloadFileName(disposition, contentType string) string {
	name := FileNameFromDisposition(disposition)
	ext := ExtensionForContentType(contentType)
	if strings.Contains(name, ".") {
		return name
	}
	return name + ext
}
