package carddelivery

import (
	"github.com/go-playground/validator/v10"

	"github.com/go-card/card-bank/internal/domain"
)

// ValidTransactionType validates whether the transaction type is supported.
var ValidTransactionType validator.Func = func(fl validator.FieldLevel) bool {
	if t, ok := fl.Field().Interface().(string); ok {
		return domain.IsSupportedTransactionType(t)
	}
	return false
}

// ValidCardStatus validates whether the card status is known.
var ValidCardStatus validator.Func = func(fl validator.FieldLevel) bool {
	if s, ok := fl.Field().Interface().(string); ok {
		return domain.IsSupportedStatus(s)
	}
	return false
}
