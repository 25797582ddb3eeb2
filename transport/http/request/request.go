// Package request holds the request parsing shared by handlers.
package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"salon/infras/jwt"
	"salon/shared/constant"
	"salon/shared/failure"
)

// ParseForm parses a multipart or url-encoded body. A request that is not
// multipart is accepted so plain form posts still reach the handler.
func ParseForm(r *http.Request) error {
	err := r.ParseMultipartForm(constant.RequestMaxMemory)
	if err == nil || errors.Is(err, http.ErrNotMultipart) {
		return nil
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) || errors.Is(err, multipart.ErrMessageTooLarge) {
		return failure.BadRequestFromString("Request body is too large")
	}

	return failure.BadRequest(err)
}

// FormFile returns the uploaded file for field, or nils when none was sent.
// The caller closes the returned file.
func FormFile(r *http.Request, field string) (multipart.File, *multipart.FileHeader) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return nil, nil
	}

	return file, header
}

// FormValue returns the trimmed form value for field.
func FormValue(r *http.Request, field string) string {
	return strings.TrimSpace(r.FormValue(field))
}

// AdminToken extracts an admin token from, in order, an
// Authorization bearer header, the X-Admin-Token header or a JSON body field
// named token. A consumed body is restored so the next handler can read it.
func AdminToken(r *http.Request) string {
	if token, err := jwt.ExtractTokenFromHeader(r.Header.Get(constant.RequestHeaderAuthorization)); err == nil && token != "" {
		return token
	}

	if token := strings.TrimSpace(r.Header.Get(constant.RequestHeaderAdminToken)); token != "" {
		return token
	}

	return bodyToken(r)
}

func bodyToken(r *http.Request) string {
	if r.Body == nil || !strings.HasPrefix(r.Header.Get(constant.RequestHeaderContentType), constant.ContentTypeJSON) {
		return ""
	}

	raw, err := io.ReadAll(io.LimitReader(r.Body, constant.RequestMaxMemory))
	r.Body.Close()
	r.Body = io.NopCloser(bytes.NewReader(raw))

	if err != nil {
		return ""
	}

	var body struct {
		Token any `json:"token"`
	}

	if json.Unmarshal(raw, &body) != nil {
		return ""
	}

	token, _ := body.Token.(string)

	return strings.TrimSpace(token)
}
