package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"slices"
	"strconv"
	"strings"

	"hotel/shared/constant"
	"hotel/shared/failure"

	val "github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

const dataURLPrefix = "data:"

var validate *val.Validate

// contentTypeOf returns the media type of a data URL such as "data:image/png;base64,...".
func contentTypeOf(dataURL string) string {
	start := len(dataURLPrefix)
	end := strings.Index(dataURL, ";base64,")

	if !strings.HasPrefix(dataURL, dataURLPrefix) || end < start {
		return ""
	}

	return dataURL[start:end]
}

func registerMimetypeValidation(field val.FieldLevel) bool {
	var contentType string

	switch v := field.Field().Interface().(type) {
	case multipart.FileHeader:
		contentType = v.Header.Get(constant.RequestHeaderContentType)
	case *multipart.FileHeader:
		if v == nil {
			return true
		}

		contentType = v.Header.Get(constant.RequestHeaderContentType)
	case string:
		contentType = contentTypeOf(v)
	}

	if contentType == "" {
		return false
	}

	allowedTypes := strings.Split(field.Param(), " ")

	return slices.Contains(allowedTypes, contentType)
}

func registerFileSizeValidation(field val.FieldLevel) bool {
	var fileSize int64

	switch v := field.Field().Interface().(type) {
	case multipart.FileHeader:
		fileSize = v.Size
	case *multipart.FileHeader:
		if v == nil {
			return true
		}

		fileSize = v.Size
	}

	maxSizeMB, err := strconv.ParseFloat(field.Param(), 64)
	if err != nil {
		return false
	}

	bytesConversion := 1024.0
	maxSizeBytes := int64(maxSizeMB * bytesConversion * bytesConversion)

	return fileSize <= maxSizeBytes
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	err := validate.RegisterValidation("notblank", validators.NotBlank)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("empty", func(fl val.FieldLevel) bool {
		return fl.Field().IsZero()
	})
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("mimetypes", registerMimetypeValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("maxfilesize", registerFileSizeValidation)
	if err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
