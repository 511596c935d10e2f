package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/LittlePapers/calendarizer/internal/calendar"
	"github.com/LittlePapers/calendarizer/internal/holiday"
	"github.com/LittlePapers/calendarizer/internal/render"
	calerrors "github.com/LittlePapers/calendarizer/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the validator shared across the package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("layout", func(fl validator.FieldLevel) bool {
			_, err := calendar.ParseLayout(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("holiday_date", func(fl validator.FieldLevel) bool {
			_, err := holiday.ParseTable([]string{fl.Field().String()})
			return err == nil
		})

		_ = v.RegisterValidation("fill", func(fl validator.FieldLevel) bool {
			_, err := render.ParseColor(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns the configured validator for use outside the package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// ValidateConfig checks a decoded document.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return calerrors.NewValidationError("config", "config is nil", nil)
	}
	return convertValidationError(validatorInstance().Struct(cfg))
}

// convertValidationError turns validator errors into ValidationErrors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Param() != "" {
			msg = fmt.Sprintf("%s failed validation for tag '%s=%s'", field, ve.Tag(), ve.Param())
		}
		return calerrors.NewValidationError(field, msg, err)
	}

	return calerrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName drops the root struct name and lowercases the rest, so
// Config.Color.A reads as color.a.
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}
