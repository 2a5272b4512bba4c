// Package web defines common components for a web application.
package web

import "github.com/go-playground/validator/v10"

// Response holds the common response type for all APIs.
type Response struct {
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

// Error wraps a given err into a json friendly response.
func Error(err error) Response {
	return Response{Error: err.Error()}
}

// GetErrorMsg maps a binding violation to a human readable message.
func GetErrorMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return " is required"
	case "len":
		return " must be " + fe.Param() + " characters long"
	case "email":
		return " must be a valid email"
	case "min":
		return " must be greater than " + fe.Param()
	case "uuid":
		return " must be a valid UUID"
	case "transactiontype":
		return " is not supported"
	case "cardstatus":
		return " is not a valid status"
	default:
		return " is invalid"
	}
}
