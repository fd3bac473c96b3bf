package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	appErrors "github.com/noah-isme/agency-dashboard-api/pkg/errors"
)

// Clock resolves "today" in the business timezone.
type Clock struct {
	Now      func() time.Time
	Location *time.Location
}

// Today returns the current instant in the configured location.
func (c Clock) Today() time.Time {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	loc := c.Location
	if loc == nil {
		loc = time.Local
	}
	return now().In(loc)
}

// NewValidator returns a validator that reports fields by their JSON names.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	return v
}

func validationError(err error, message string) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		details := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			details = append(details, describeFieldError(fe))
		}
		message = message + ": " + strings.Join(details, "; ")
	}
	return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, message)
}

func describeFieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s must have at least %s item(s)", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "uuid":
		return field + " must be a valid UUID"
	case "datetime":
		return fmt.Sprintf("%s must use the %s layout", field, fe.Param())
	case "url":
		return field + " must be a valid URL"
	default:
		return field + " is invalid"
	}
}

// writeError translates a failed insert into the caller-facing kind.
func writeError(logger *zap.Logger, err error, op, missingRef string) error {
	switch {
	case appErrors.IsForeignKeyViolation(err):
		return appErrors.Clone(appErrors.ErrNotFound, missingRef+" not found")
	case appErrors.IsInvalidInput(err):
		return validationError(err, "invalid "+op+" payload")
	}
	logger.Error("storage write failed", zap.String("op", op), zap.Error(err))
	return appErrors.Storage(err, "failed to "+op)
}

func readError(logger *zap.Logger, err error, op string) error {
	logger.Error("storage read failed", zap.String("op", op), zap.Error(err))
	return appErrors.Storage(err, "failed to "+op)
}
