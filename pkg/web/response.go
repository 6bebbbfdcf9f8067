// Package web defines common components for a web application.
package web

import (
	"github.com/go-playground/validator/v10"
)

// JSONError provides type for explicit json encoded error response.
type JSONError struct {
	Error string `json:"error"`
}

// Error wraps a given err into json frinedly struct.
func Error(err error) JSONError {
	return JSONError{Error: err.Error()}
}

// GetErrorMsg returns a readable message for a failed validation tag.
// The caller prefixes it with the field name.
func GetErrorMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return " field is required"
	case "gt":
		return " field must be greater than " + fe.Param()
	case "min":
		return " field value or length is less than " + fe.Param()
	case "max":
		return " field value or length is greater than " + fe.Param()
	default:
		return " field is invalid"
	}
}
