package apiclient

import (
	"io"
	"mime"
	"mime/multipart"
	"saude-connect/internal/app/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeMultipart(t *testing.T) {
	form := &models.MultipartForm{}
	form.Add("name", "Bia")
	form.Add("activities[]", "1")
	form.Add("activities[]", "2")
	form.AddIfPresent("bio", "")
	form.AttachFile("diploma", `dip"loma.pdf`, "application/pdf", []byte("%PDF-1.4"))

	body, contentType, err := encodeMultipart(form)
	require.NoError(t, err)

	mediaType, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)
	assert.Equal(t, "multipart/form-data", mediaType)

	reader := multipart.NewReader(body, params["boundary"])
	var names []string
	var values []string
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		content, err := io.ReadAll(part)
		require.NoError(t, err)
		names = append(names, part.FormName())
		values = append(values, string(content))
		if part.FormName() == "diploma" {
			assert.Equal(t, `dip"loma.pdf`, part.FileName())
			assert.Equal(t, "application/pdf", part.Header.Get("Content-Type"))
		}
	}

	assert.Equal(t, []string{"name", "activities[]", "activities[]", "diploma"}, names)
	assert.Equal(t, []string{"Bia", "1", "2", "%PDF-1.4"}, values)
}
