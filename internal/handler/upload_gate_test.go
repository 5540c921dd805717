package handler

import (
	"bytes"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func buildForm(t *testing.T, fields map[string]string, files []struct {
	field, filename, contentType, body string
}) *multipart.Form {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		assert.NoError(t, w.WriteField(k, v))
	}
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="`+f.field+`"; filename="`+f.filename+`"`)
		h.Set("Content-Type", f.contentType)
		part, err := w.CreatePart(h)
		assert.NoError(t, err)
		_, err = part.Write([]byte(f.body))
		assert.NoError(t, err)
	}
	assert.NoError(t, w.Close())

	reader := multipart.NewReader(&buf, w.Boundary())
	form, err := reader.ReadForm(64 << 20)
	assert.NoError(t, err)
	return form
}

func TestCollectFiles(t *testing.T) {
	t.Run("valid product upload is buffered", func(t *testing.T) {
		form := buildForm(t, nil, []struct{ field, filename, contentType, body string }{
			{"image1", "front.png", "image/png", "png-bytes"},
			{"pdfFile", "brochure.pdf", "application/pdf", "pdf-bytes"},
		})

		files, httpErr := collectFiles(form, productFileRules())
		assert.Nil(t, httpErr)
		assert.Len(t, files, 2)
		assert.Equal(t, "front.png", files["image1"].Filename)
		assert.Equal(t, "image/png", files["image1"].ContentType)
		assert.Equal(t, []byte("pdf-bytes"), files["pdfFile"].Data)
	})

	t.Run("unexpected field is rejected", func(t *testing.T) {
		form := buildForm(t, nil, []struct{ field, filename, contentType, body string }{
			{"malware", "x.png", "image/png", "x"},
		})

		files, httpErr := collectFiles(form, productFileRules())
		assert.Nil(t, files)
		if assert.NotNil(t, httpErr) {
			assert.Equal(t, "UNEXPECTED_FILE", httpErr.Code)
		}
	})

	t.Run("wrong mime type is rejected", func(t *testing.T) {
		form := buildForm(t, nil, []struct{ field, filename, contentType, body string }{
			{"pdfFile", "nasty.exe", "application/octet-stream", "x"},
		})

		files, httpErr := collectFiles(form, productFileRules())
		assert.Nil(t, files)
		if assert.NotNil(t, httpErr) {
			assert.Equal(t, "INVALID_FILE_TYPE", httpErr.Code)
		}
	})

	t.Run("attachment rules reject product image fields", func(t *testing.T) {
		form := buildForm(t, nil, []struct{ field, filename, contentType, body string }{
			{"image1", "front.png", "image/png", "x"},
		})

		_, httpErr := collectFiles(form, attachmentFileRules())
		if assert.NotNil(t, httpErr) {
			assert.Equal(t, "UNEXPECTED_FILE", httpErr.Code)
		}
	})
}

func TestFormHelpers(t *testing.T) {
	form := buildForm(t, map[string]string{
		"name":        "E35",
		"description": "",
	}, nil)

	assert.Equal(t, "E35", formValue(form, "name"))
	assert.Equal(t, "", formValue(form, "missing"))

	// presence of an empty value is distinguishable from absence
	if desc := formPtr(form, "description"); assert.NotNil(t, desc) {
		assert.Equal(t, "", *desc)
	}
	assert.Nil(t, formPtr(form, "missing"))
}
