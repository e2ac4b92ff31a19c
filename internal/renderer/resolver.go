package renderer

import (
	"fmt"
	"time"
)

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// Resolve maps a (field, recipient) pair to the text that renders on the
// certificate. Total function: every branch falls back to a string, so a
// render pass can never fail during resolution. QR fields resolve to the
// empty string; their graphic is injected at compose time on the single
// certificate path and deliberately omitted in bulk output.
func Resolve(field Field, recipient *Recipient) string {
	switch field.Type {
	case FieldTypeDate:
		return formatLongDate(recipient.IssueDate)
	case FieldTypeQRCode:
		return ""
	default:
		switch field.Name {
		case "recipient":
			return recipient.Name
		case "course":
			if recipient.Course != "" {
				return recipient.Course
			}
			return field.DefaultValue
		default:
			if value, ok := recipient.CustomFields[field.Name]; ok {
				return value
			}
			return field.DefaultValue
		}
	}
}

// formatLongDate renders an ISO-8601 date as a Spanish long date, e.g.
// "15 de enero de 2024". Unparseable input is passed through unchanged so
// the resolver stays total.
func formatLongDate(isoDate string) string {
	if isoDate == "" {
		return ""
	}

	parsed, err := time.Parse(time.RFC3339, isoDate)
	if err != nil {
		parsed, err = time.Parse("2006-01-02", isoDate)
		if err != nil {
			return isoDate
		}
	}

	utc := parsed.UTC()
	return fmt.Sprintf("%d de %s de %d", utc.Day(), spanishMonths[utc.Month()-1], utc.Year())
}
