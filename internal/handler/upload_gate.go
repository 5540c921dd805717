package handler

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	errs "infracore/internal/errors"
	"infracore/internal/service"
)

// Per-file size ceilings. Product media is larger than attachment media.
const (
	productFileLimit    = 30 << 20
	attachmentFileLimit = 10 << 20
)

var (
	imageMIMETypes = []string{"image/jpeg", "image/png", "image/webp", "image/jpg"}
	pdfMIMETypes   = []string{"application/pdf"}
)

// fileRule is the gate for one named file field: size ceiling and MIME
// whitelist. Violations are client errors with stable codes, never 500s.
type fileRule struct {
	maxSize int64
	mimes   []string
}

func productFileRules() map[string]fileRule {
	image := fileRule{maxSize: productFileLimit, mimes: imageMIMETypes}
	pdf := fileRule{maxSize: productFileLimit, mimes: pdfMIMETypes}
	return map[string]fileRule{
		"image1":      image,
		"image2":      image,
		"image3":      image,
		"image4":      image,
		"pdfFile":     pdf,
		"specPdfFile": pdf,
	}
}

func attachmentFileRules() map[string]fileRule {
	return map[string]fileRule{
		"image":       {maxSize: attachmentFileLimit, mimes: imageMIMETypes},
		"pdfFile":     {maxSize: attachmentFileLimit, mimes: pdfMIMETypes},
		"specPdfFile": {maxSize: attachmentFileLimit, mimes: pdfMIMETypes},
	}
}

func (r fileRule) allows(contentType string) bool {
	for _, m := range r.mimes {
		if m == contentType {
			return true
		}
	}
	return false
}

// collectFiles buffers every file part of the form, enforcing the route's
// rules. Only the first file of each field is taken, matching the one-file-
// per-field upload contract.
func collectFiles(form *multipart.Form, rules map[string]fileRule) (map[string]service.FilePart, *errs.HTTPError) {
	files := make(map[string]service.FilePart)
	for field, headers := range form.File {
		rule, ok := rules[field]
		if !ok {
			return nil, errs.NewHTTPError(http.StatusBadRequest,
				fmt.Sprintf("unexpected file field %q", field), "UNEXPECTED_FILE")
		}
		if len(headers) == 0 {
			continue
		}
		fh := headers[0]
		if fh.Size > rule.maxSize {
			return nil, errs.NewHTTPError(http.StatusBadRequest,
				fmt.Sprintf("file %q exceeds the %dMB limit", fh.Filename, rule.maxSize>>20), "FILE_TOO_LARGE")
		}
		contentType := fh.Header.Get("Content-Type")
		if !rule.allows(contentType) {
			return nil, errs.NewHTTPError(http.StatusBadRequest,
				fmt.Sprintf("invalid file type %q for field %q", contentType, field), "INVALID_FILE_TYPE")
		}

		src, err := fh.Open()
		if err != nil {
			return nil, errs.NewHTTPError(http.StatusBadRequest, "unreadable file part", "INVALID_FILE")
		}
		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			return nil, errs.NewHTTPError(http.StatusBadRequest, "unreadable file part", "INVALID_FILE")
		}

		files[field] = service.FilePart{
			Filename:    fh.Filename,
			ContentType: contentType,
			Data:        data,
		}
	}
	return files, nil
}

// formValue returns the first value of a form field, or "".
func formValue(form *multipart.Form, key string) string {
	if vals := form.Value[key]; len(vals) > 0 {
		return vals[0]
	}
	return ""
}

// formPtr returns a pointer to the first value of a form field, or nil when
// the field was absent. Presence of an empty value is preserved.
func formPtr(form *multipart.Form, key string) *string {
	vals, ok := form.Value[key]
	if !ok || len(vals) == 0 {
		return nil
	}
	v := vals[0]
	return &v
}
