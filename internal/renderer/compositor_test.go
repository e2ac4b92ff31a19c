package renderer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTemplate() *Template {
	return &Template{
		ID:       "tpl-1",
		Name:     "Completion",
		ImageURL: "https://cdn.example.com/bg.png",
		Fields: []Field{
			{ID: "f1", Name: "recipient", Type: FieldTypeText, X: 50, Y: 40, FontSize: 32},
			{ID: "f2", Name: "date", Type: FieldTypeDate, X: 50, Y: 70},
			{ID: "f3", Type: FieldTypeQRCode, X: 90, Y: 90},
		},
	}
}

func TestComposeSurface_ResolvedFieldsPositioned(t *testing.T) {
	recipient := &Recipient{Name: "Maria Lopez", IssueDate: "2024-01-15T00:00:00.000Z"}

	html, err := ComposeSurface(testTemplate(), recipient, nil)
	require.NoError(t, err)

	assert.Contains(t, html, "Maria Lopez")
	assert.Contains(t, html, "15 de enero de 2024")
	assert.Contains(t, html, "left: 50%; top: 40%")
	assert.Contains(t, html, "translate(-50%, -50%)", "fields anchor at their own center")
	assert.Contains(t, html, "background-size: cover")
	assert.Contains(t, html, "https://cdn.example.com/bg.png")
}

func TestComposeSurface_FontSizeDoubledForPrint(t *testing.T) {
	recipient := &Recipient{Name: "A"}

	html, err := ComposeSurface(testTemplate(), recipient, nil)
	require.NoError(t, err)

	assert.Contains(t, html, "font-size: 64px", "32px field doubles for the print surface")
}

// Bulk output omits the QR graphic by design; the single-certificate path
// embeds it as a data URL.
func TestComposeSurface_QROnlyWhenProvided(t *testing.T) {
	recipient := &Recipient{Name: "A"}

	bulkHTML, err := ComposeSurface(testTemplate(), recipient, nil)
	require.NoError(t, err)
	assert.False(t, strings.Contains(bulkHTML, "<img"), "bulk surface must not contain a QR image")

	qr, err := QRCodePNG(VerificationURL("https://verify.example.com", "cert-1"))
	require.NoError(t, err)

	singleHTML, err := ComposeSurface(testTemplate(), recipient, qr)
	require.NoError(t, err)
	assert.Contains(t, singleHTML, "data:image/png;base64,")
	assert.Contains(t, singleHTML, "left: 90%; top: 90%")
}

func TestParseFields(t *testing.T) {
	raw := `[{"id":"f1","name":"recipient","type":"text","x":50,"y":40},{"id":"f2","type":"qrcode","x":90,"y":90}]`

	fields, err := ParseFields(raw)
	require.NoError(t, err)
	require.Len(t, fields, 2)
	assert.Equal(t, FieldTypeText, fields[0].Type)
	assert.Equal(t, FieldTypeQRCode, fields[1].Type)
}

func TestParseFields_RejectsUnknownType(t *testing.T) {
	_, err := ParseFields(`[{"id":"f1","name":"x","type":"video","x":0,"y":0}]`)
	assert.Error(t, err)
}

func TestParseFields_RejectsNamelessTextField(t *testing.T) {
	_, err := ParseFields(`[{"id":"f1","type":"text","x":0,"y":0}]`)
	assert.Error(t, err)
}

// Out-of-range coordinates are tolerated, not rejected; the centering
// transform keeps them visually sane.
func TestParseFields_AcceptsOutOfRangeCoordinates(t *testing.T) {
	fields, err := ParseFields(`[{"id":"f1","name":"recipient","type":"text","x":120,"y":-5}]`)
	require.NoError(t, err)
	assert.Equal(t, 120.0, fields[0].X)
}
