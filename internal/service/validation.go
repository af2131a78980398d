package service

import (
	"errors"
	"fmt"
	"strings"

	apperrors "bookclub-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

// validationError converts a validator.Struct failure into the error taxonomy
// so handlers can map it to a 400 with a field-specific message.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		first := verrs[0]
		field := strings.ToLower(first.Field()[:1]) + first.Field()[1:]
		if first.Tag() == "required" {
			return apperrors.NewValidationError(field, "is required")
		}
		return apperrors.NewValidationError(field, fmt.Sprintf("failed on '%s'", first.Tag()))
	}
	return apperrors.NewValidationError("", err.Error())
}
