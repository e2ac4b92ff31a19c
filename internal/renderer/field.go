package renderer

import (
	"encoding/json"
	"fmt"
)

type FieldType string

const (
	FieldTypeText   FieldType = "text"
	FieldTypeDate   FieldType = "date"
	FieldTypeQRCode FieldType = "qrcode"
)

// Field is a named, positioned placeholder on a template. X and Y are
// percentages of the surface dimensions, so the same template renders at any
// raster resolution. Font attributes are ignored for qrcode fields.
type Field struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Type         FieldType `json:"type"`
	X            float64   `json:"x"`
	Y            float64   `json:"y"`
	FontSize     float64   `json:"fontSize,omitempty"`
	FontFamily   string    `json:"fontFamily,omitempty"`
	Color        string    `json:"color,omitempty"`
	DefaultValue string    `json:"defaultValue,omitempty"`
}

// Validate checks structural well-formedness. Out-of-range coordinates are
// accepted on purpose: the compositor centers fields with a CSS transform, so
// a stray coordinate degrades visually instead of failing the render.
func (f Field) Validate() error {
	switch f.Type {
	case FieldTypeText, FieldTypeDate, FieldTypeQRCode:
	default:
		return fmt.Errorf("unknown field type %q", f.Type)
	}

	if f.Type != FieldTypeQRCode && f.Name == "" {
		return fmt.Errorf("field %q has no name", f.ID)
	}

	return nil
}

// ParseFields decodes the JSON field array stored on a template and rejects
// malformed entries.
func ParseFields(raw string) ([]Field, error) {
	if raw == "" {
		return nil, nil
	}

	var fields []Field
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, fmt.Errorf("failed to parse template fields: %w", err)
	}

	for _, f := range fields {
		if err := f.Validate(); err != nil {
			return nil, err
		}
	}

	return fields, nil
}

// Template is the pipeline's view of a certificate template. Immutable
// during a render pass.
type Template struct {
	ID       string
	Name     string
	ImageURL string
	Fields   []Field
}

// Recipient is the pipeline's view of a recipient record. Name is the only
// required attribute; everything else resolves through fallbacks.
type Recipient struct {
	ID           string
	Name         string
	Email        string
	Course       string
	IssueDate    string
	CustomFields map[string]string
}
