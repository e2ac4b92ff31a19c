package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "marialopez", SanitizeFilename("Maria Lopez"))
	assert.Equal(t, "johnsmith", SanitizeFilename("John Smith"))
	assert.Equal(t, "janedoe2", SanitizeFilename("Jane-Doe (2)"))
	assert.Equal(t, "", SanitizeFilename("!!!"))
}

func TestSanitizeFilename_Idempotent(t *testing.T) {
	names := []string{"John Smith", "  spaced  out  ", "UPPER-case_name", "José", "42"}

	for _, name := range names {
		once := SanitizeFilename(name)
		assert.Equal(t, once, SanitizeFilename(once), "sanitize must be idempotent for %q", name)
	}
}

func TestArchiveFilename_Collision(t *testing.T) {
	used := map[string]bool{}

	first := archiveFilename("John Smith", "cert-1", used)
	used[first] = true
	assert.Equal(t, "johnsmith-certificate.pdf", first)

	second := archiveFilename("john SMITH", "cert-2", used)
	assert.Equal(t, "johnsmith-certificate-cert-2.pdf", second)
}

func TestArchiveFilename_EmptyNameFallsBackToID(t *testing.T) {
	filename := archiveFilename("---", "cert-9", map[string]bool{})
	assert.Equal(t, "cert-9-certificate.pdf", filename)
}
