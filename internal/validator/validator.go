// Package validator provides the custom validation tags used by monthbook
// request types.
package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"monthbook/internal/models"
	"monthbook/internal/monthkey"
)

// New returns a validator with the custom tags registered and field names
// reported by their JSON tag, so errors read like request paths.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	registerAll(v)
	return v
}

func registerAll(v *validator.Validate) {
	_ = v.RegisterValidation("month_key", validateMonthKey)
	_ = v.RegisterValidation("ymd_date", validateDate)
	_ = v.RegisterValidation("entry_type", validateEntryType)
	_ = v.RegisterValidation("payment_method", validatePaymentMethod)
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

func validateMonthKey(fl validator.FieldLevel) bool {
	return monthkey.IsValid(fl.Field().String())
}

func validateDate(fl validator.FieldLevel) bool {
	return monthkey.IsDate(fl.Field().String())
}

func validateEntryType(fl validator.FieldLevel) bool {
	switch models.EntryType(fl.Field().String()) {
	case models.EntryTypeExpense, models.EntryTypeIncome:
		return true
	}
	return false
}

func validatePaymentMethod(fl validator.FieldLevel) bool {
	value := models.PaymentMethod(fl.Field().String())
	for _, m := range models.PaymentMethods {
		if value == m {
			return true
		}
	}
	return false
}
