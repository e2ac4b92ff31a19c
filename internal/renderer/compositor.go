package renderer

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
)

// Bulk rendering standardizes on one output resolution regardless of the
// template's declared dimensions, roughly A4 landscape at 144 DPI.
const (
	SurfaceWidth  = 1200
	SurfaceHeight = 848
)

// Font sizes are doubled relative to the interactive on-screen preview to
// compensate for the higher fixed pixel resolution of print output.
const pdfFontScale = 2.0

const qrDisplaySize = 120

var surfaceTemplate = template.Must(template.New("surface").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
html, body { margin: 0; padding: 0; }
.surface {
	position: relative;
	width: {{.Width}}px;
	height: {{.Height}}px;
	overflow: hidden;
	background-image: url('{{.ImageURL}}');
	background-size: cover;
	background-position: center;
	background-repeat: no-repeat;
}
.field {
	position: absolute;
	transform: translate(-50%, -50%);
	font-weight: bold;
	text-shadow: 0 0 6px rgba(255, 255, 255, 0.85), 1px 1px 2px rgba(255, 255, 255, 0.7);
	white-space: nowrap;
}
</style>
</head>
<body>
<div class="surface">
{{- range .Fields}}
{{- if .IsQR}}
<img class="field" src="{{.QRDataURL}}" style="left: {{.X}}%; top: {{.Y}}%; width: {{.QRSize}}px; height: {{.QRSize}}px;">
{{- else}}
<span class="field" style="left: {{.X}}%; top: {{.Y}}%; font-size: {{.FontSize}}px; font-family: {{.FontFamily}}; color: {{.Color}};">{{.Value}}</span>
{{- end}}
{{- end}}
</div>
</body>
</html>
`))

type surfaceField struct {
	Value      string
	X          float64
	Y          float64
	FontSize   float64
	FontFamily string
	Color      string
	IsQR       bool
	QRDataURL  template.URL
	QRSize     int
}

type surfaceData struct {
	Width    int
	Height   int
	ImageURL template.URL
	Fields   []surfaceField
}

// ComposeSurface builds the HTML surface for one certificate: background
// image cover-fit over the fixed raster dimensions, resolved fields
// absolutely positioned and anchored at their own center. qrPNG, when
// non-nil, is embedded as a data URL image at the qrcode field's position;
// passing nil skips QR fields entirely (the bulk path).
func ComposeSurface(tmpl *Template, recipient *Recipient, qrPNG []byte) (string, error) {
	data := surfaceData{
		Width:    SurfaceWidth,
		Height:   SurfaceHeight,
		ImageURL: template.URL(tmpl.ImageURL),
	}

	for _, field := range tmpl.Fields {
		if field.Type == FieldTypeQRCode {
			if qrPNG == nil {
				continue
			}
			dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString(qrPNG)
			data.Fields = append(data.Fields, surfaceField{
				X:         field.X,
				Y:         field.Y,
				IsQR:      true,
				QRDataURL: template.URL(dataURL),
				QRSize:    qrDisplaySize,
			})
			continue
		}

		fontSize := field.FontSize
		if fontSize <= 0 {
			fontSize = 24
		}

		fontFamily := field.FontFamily
		if fontFamily == "" {
			fontFamily = "Georgia, serif"
		}

		color := field.Color
		if color == "" {
			color = "#1a1a1a"
		}

		data.Fields = append(data.Fields, surfaceField{
			Value:      Resolve(field, recipient),
			X:          field.X,
			Y:          field.Y,
			FontSize:   fontSize * pdfFontScale,
			FontFamily: fontFamily,
			Color:      color,
		})
	}

	var buf bytes.Buffer
	if err := surfaceTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to compose certificate surface: %w", err)
	}

	return buf.String(), nil
}
