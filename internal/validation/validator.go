package validation

import (
	"reflect"
	"strings"

	"corecrm/internal/models"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("customer_status", validateCustomerStatus)
	_ = v.RegisterValidation("export_format", validateExportFormat)

	// Error messages name the JSON field, not the Go field
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// validateCustomerStatus accepts exactly the statuses a customer record can
// hold. An empty string passes; pair with "required" where the field is
// mandatory.
func validateCustomerStatus(fl validator.FieldLevel) bool {
	status := fl.Field().String()
	if status == "" {
		return true
	}
	return models.Status(status).Valid()
}

// validateExportFormat accepts the formats the export endpoint can produce.
func validateExportFormat(fl validator.FieldLevel) bool {
	format := strings.ToLower(fl.Field().String())
	if format == "" {
		return true
	}
	return format == "csv" || format == "json"
}
