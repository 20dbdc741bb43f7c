package utils

import (
	"saude-connect/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAllowedDiplomaFile(t *testing.T) {
	tests := []struct {
		filename string
		allowed  bool
	}{
		{"diploma.pdf", true},
		{"DIPLOMA.PDF", true},
		{"scan.jpeg", true},
		{"scan.jpg", true},
		{"photo.png", true},
		{"diploma.docx", false},
		{"diploma", false},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.allowed, IsAllowedDiplomaFile(tt.filename))
		})
	}
}

func TestContentTypeForFile(t *testing.T) {
	assert.Equal(t, constvars.MIMEApplicationPDF, ContentTypeForFile("a.pdf"))
	assert.Equal(t, constvars.MIMEImageJPEG, ContentTypeForFile("a.JPG"))
	assert.Equal(t, constvars.MIMEOctetStream, ContentTypeForFile("a.bin"))
}
