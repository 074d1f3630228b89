package services

import (
	"errors"
	"fmt"
	"strings"

	"inkwell/app/apperr"

	"github.com/go-playground/validator/v10"
)

// validationError turns a model validation failure into a 400 response
// naming the first offending field.
func validationError(err error) error {
	var fields validator.ValidationErrors
	if errors.As(err, &fields) && len(fields) > 0 {
		return apperr.BadRequest(fmt.Sprintf("Invalid value for %s", strings.ToLower(fields[0].Field())))
	}
	return apperr.BadRequest(err.Error())
}
