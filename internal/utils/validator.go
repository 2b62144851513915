// internal/utils/validator.go
package utils

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/javajoker/heyi-backend/internal/models"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("category", validateCategory)
	validate.RegisterValidation("sale_mode", validateSaleMode)
	validate.RegisterValidation("script_type", validateScriptType)
	validate.RegisterValidation("chain", validateChain)
	validate.RegisterValidation("license_use", validateLicenseUse)
	validate.RegisterValidation("license_term", validateLicenseTerm)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateCategory(fl validator.FieldLevel) bool {
	return models.Category(fl.Field().String()).Valid()
}

func validateSaleMode(fl validator.FieldLevel) bool {
	return models.SaleMode(fl.Field().String()).Valid()
}

// An empty script type clears it, which is how non-literature assets are stored.
func validateScriptType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || models.ScriptType(value).Valid()
}

func validateChain(fl validator.FieldLevel) bool {
	return models.Chain(fl.Field().String()).Valid()
}

func validateLicenseUse(fl validator.FieldLevel) bool {
	_, ok := models.LicenseUseMultiplier(models.LicenseUse(fl.Field().String()))
	return ok
}

func validateLicenseTerm(fl validator.FieldLevel) bool {
	_, ok := models.LicenseTermMultiplier(models.LicenseTerm(fl.Field().String()))
	return ok
}

// Validation tags for common fields
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   strings.ToLower(e.Field()),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "len":
		return e.Field() + " must be exactly " + e.Param() + " characters"
	case "category":
		return "Category must be one of image, music, video, literature"
	case "sale_mode":
		return "Sales mode must be one of direct, license, auction, lease"
	case "script_type":
		return "Script type must be one of short-drama, long-drama, unit-series"
	case "chain":
		return "Chain must be Harmony or Polygon"
	case "license_use":
		return "License type must be one of personal, commercial, modification"
	case "license_term":
		return "License duration must be one of 1year, 3years, permanent"
	default:
		return e.Field() + " is invalid"
	}
}
