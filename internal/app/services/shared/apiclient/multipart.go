package apiclient

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"saude-connect/internal/app/models"
	"saude-connect/internal/pkg/constvars"
	"strings"
)

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// encodeMultipart writes fields in order, then files. The returned string
// is the Content-Type header including the boundary.
func encodeMultipart(form *models.MultipartForm) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for _, field := range form.Fields {
		if err := writer.WriteField(field.Name, field.Value); err != nil {
			return nil, "", err
		}
	}

	for _, file := range form.Files {
		contentType := file.ContentType
		if contentType == "" {
			contentType = constvars.MIMEOctetStream
		}
		header := make(textproto.MIMEHeader)
		header.Set(constvars.HeaderContentDisposition, fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
			quoteEscaper.Replace(file.FieldName), quoteEscaper.Replace(file.Filename)))
		header.Set(constvars.HeaderContentType, contentType)

		part, err := writer.CreatePart(header)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(file.Content); err != nil {
			return nil, "", err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", err
	}
	return body, writer.FormDataContentType(), nil
}
