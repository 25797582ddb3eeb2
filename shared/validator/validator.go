// Package validator decodes JSON request bodies and checks them against
// go-playground `validate` tags. Every failure is a 400 whose message names
// the offending field by its JSON name.
package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"reflect"
	"slices"
	"strconv"
	"strings"

	val "github.com/go-playground/validator/v10"

	"salon/shared/constant"
	"salon/shared/failure"
)

const bytesPerMB = 1 << 20

var templates = map[string]string{
	"required":    "{field} is required",
	"required_if": "{field} is required",
	"email":       "{field} must be a valid email address",
	"oneof":       "{field} must be one of {param}",
	"min":         "{field} must be greater than or equal to {param}",
	"gte":         "{field} must be greater than or equal to {param}",
	"max":         "{field} must be less than or equal to {param}",
	"min_string":  "{field} must be at least {param} characters",
	"max_string":  "{field} must be at most {param} characters",
	"lte":         "{field} must be less than or equal to {param}",
	"mimetypes":   "{field} must be one of {param}",
	"maxfilesize": "{field} must not exceed {param} MB",
}

var validate = newValidate()

func newValidate() *val.Validate {
	v := val.New(val.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return field.Name
		}

		return name
	})

	return v
}

// Validate decodes r into data and validates the result.
func Validate[T any](r io.Reader, data *T) error {
	if err := json.NewDecoder(r).Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err))
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	if err := validate.Struct(data); err != nil {
		return failure.BadRequestFromString(describe(err))
	}

	return nil
}

// ValidateFile checks an upload against a space separated list of content
// types and a size ceiling in megabytes.
func ValidateFile(file *multipart.FileHeader, field, mimeTypes string, maxSizeMB float64) error {
	if file == nil {
		return failure.BadRequestFromString(render("required", field, ""))
	}

	contentType := strings.ToLower(strings.TrimSpace(file.Header.Get(constant.RequestHeaderContentType)))
	if !slices.Contains(strings.Fields(mimeTypes), contentType) {
		return failure.BadRequestFromString(render("mimetypes", field, mimeTypes))
	}

	if float64(file.Size) > maxSizeMB*bytesPerMB {
		return failure.BadRequestFromString(render("maxfilesize", field, strconv.FormatFloat(maxSizeMB, 'f', -1, 64)))
	}

	return nil
}

// describe reports the first field error that has a template, falling back
// to the library's own text.
func describe(err error) string {
	var fieldErrs val.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}

	for _, fe := range fieldErrs {
		tag := fe.Tag()
		if fe.Kind() == reflect.String && (tag == "min" || tag == "max") {
			tag += "_string"
		}

		if _, ok := templates[tag]; ok {
			return render(tag, fe.Field(), fe.Param())
		}
	}

	return fieldErrs.Error()
}

func render(tag, field, param string) string {
	return strings.NewReplacer("{field}", field, "{param}", param).Replace(templates[tag])
}
