package utils

import (
	"reflect"
	"saude-connect/internal/pkg/constvars"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)
	validate.RegisterValidation("user_type", validateUserType)
	validate.RegisterValidation("payment_method", validatePaymentMethod)
	validate.RegisterValidation("booking_status", validateBookingStatus)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

func validateUserType(fl validator.FieldLevel) bool {
	return constvars.ValidUserTypes[fl.Field().String()]
}

func validatePaymentMethod(fl validator.FieldLevel) bool {
	return constvars.ValidPaymentMethods[fl.Field().String()]
}

func validateBookingStatus(fl validator.FieldLevel) bool {
	return constvars.ValidBookingStatuses[fl.Field().String()]
}
