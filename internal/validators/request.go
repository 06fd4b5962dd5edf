// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/RPMTW/RPMTW-Server/models"
	"github.com/go-playground/validator/v10"
)

// RequestValidator checks inbound request models against their `validate`
// struct tags using go-playground/validator.
type RequestValidator struct {
	v *validator.Validate
}

func NewRequestValidator() Validator {
	return &RequestValidator{v: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate validates obj. When fields are given only those struct fields
// are checked. Failures wrap [ErrInvalidRequest].
func (rv *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch obj.(type) {
	case models.CreateUserRequest, *models.CreateUserRequest,
		models.StorageUpload, *models.StorageUpload:
	default:
		return ErrUnsupportedType
	}

	var err error
	if len(fields) == 0 {
		err = rv.v.StructCtx(ctx, obj)
	} else {
		err = rv.v.StructPartialCtx(ctx, obj, fields...)
	}
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		msgs := make([]string, 0, len(ve))
		for _, fe := range ve {
			msgs = append(msgs, fieldError(fe))
		}
		return fmt.Errorf("%w: %s", ErrInvalidRequest, strings.Join(msgs, "; "))
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %w", ErrUnsupportedType, err)
	}

	return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "uuid":
		return field + " must be a valid UUID"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
