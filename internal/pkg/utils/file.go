package utils

import (
	"path/filepath"
	"saude-connect/internal/pkg/constvars"
	"strings"
)

func FileExtension(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}

func IsAllowedDiplomaFile(filename string) bool {
	return constvars.AllowedDiplomaExtensions[FileExtension(filename)]
}

// ContentTypeForFile picks the MIME type sent with an uploaded diploma part.
func ContentTypeForFile(filename string) string {
	switch FileExtension(filename) {
	case ".pdf":
		return constvars.MIMEApplicationPDF
	case ".png":
		return constvars.MIMEImagePNG
	case ".jpg", ".jpeg":
		return constvars.MIMEImageJPEG
	default:
		return constvars.MIMEOctetStream
	}
}
