package api

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ecofinds/ecofinds-api/internal/api/shared"
)

// fieldErrors translates validator failures into the per-field messages of
// the public contract. Unknown errors collapse into a single generic entry
// so the response shape stays stable.
func fieldErrors(err error) []shared.FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []shared.FieldError{{Field: "", Message: "Invalid request"}}
	}

	out := make([]shared.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		field := jsonFieldName(fe)
		out = append(out, shared.FieldError{
			Field:   field,
			Message: fieldMessage(field, fe),
		})
	}
	return out
}

// jsonFieldName lowercases the struct field name to match the JSON payload.
// The request models keep field and JSON names aligned modulo case.
func jsonFieldName(fe validator.FieldError) string {
	switch fe.Field() {
	case "ImageURL":
		return "image_url"
	default:
		return strings.ToLower(fe.Field())
	}
}

// fieldMessage yields the client-facing message for a failed field.
func fieldMessage(field string, fe validator.FieldError) string {
	switch field {
	case "email":
		return "Enter a valid email"
	case "username":
		return "Username must be at least 3 characters"
	case "password":
		if fe.Tag() == "required" {
			return "Password is required"
		}
		if fe.Tag() == "max" {
			return "Password must be at most 72 characters"
		}
		return "Password must be at least 6 characters"
	case "price":
		return "Price must be a non-negative number"
	case "image_url":
		return "Image URL must be a valid URL"
	default:
		return field + " is invalid"
	}
}
