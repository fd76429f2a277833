package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks field constraints and the cross-field stage ordering
// (MaturityStage < SeedStage <= MaxStage).
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	if err := validate.Struct(cfg); err != nil {
		fields := FormatValidationError(err)
		msgs := make([]string, 0, len(fields))
		for field, msg := range fields {
			msgs = append(msgs, fmt.Sprintf("%s: %s", field, msg))
		}
		sort.Strings(msgs)
		return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
	}

	return nil
}

// FormatValidationError maps validator errors to a field -> message map
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = err.Error()
		return errs
	}

	for _, e := range validationErrors {
		field := e.Field()
		switch e.Tag() {
		case "required":
			errs[field] = "is required"
		case "oneof":
			errs[field] = fmt.Sprintf("must be one of [%s]", e.Param())
		case "gte":
			errs[field] = fmt.Sprintf("must be at least %s", e.Param())
		case "lte":
			errs[field] = fmt.Sprintf("must be at most %s", e.Param())
		case "gt":
			errs[field] = fmt.Sprintf("must be greater than %s", e.Param())
		case "ltfield":
			errs[field] = fmt.Sprintf("must be less than %s", e.Param())
		case "ltefield":
			errs[field] = fmt.Sprintf("must not exceed %s", e.Param())
		case "hostname_port":
			errs[field] = "must be host:port"
		case "excludesall":
			errs[field] = "contains invalid characters"
		case "max":
			errs[field] = fmt.Sprintf("must be at most %s characters", e.Param())
		default:
			errs[field] = "invalid value"
		}
	}

	return errs
}

// Warnings returns non-fatal observations about the configuration
func Warnings(cfg *Config) []string {
	var warnings []string

	if cfg.StorageBackend == StorageBackendPostgres && cfg.DBURL == "" && cfg.DBPassword == DefaultExamplePassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}

	if cfg.StorageBackend == StorageBackendMemory {
		warnings = append(warnings, "STORAGE_BACKEND=memory - progress will not be saved between sessions")
	}

	if cfg.StageDuration < time.Second {
		warnings = append(warnings, fmt.Sprintf("STAGE_DURATION %s is very short - plants will go to seed almost immediately", cfg.StageDuration))
	}

	return warnings
}
