package service

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/lshigami/scriptmark/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("validation failed")
	ErrNoImage    = errors.New("no image found for this answer")
)

// validate checks the same `binding` tags gin uses, so requests built
// outside HTTP handlers get identical rules.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}

func validateStruct(v interface{}) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}
	return nil
}

// translateError maps storage errors onto the service sentinels, keeping
// what for the message.
func translateError(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s already exists: %w", what, ErrConflict)
	case errors.Is(err, repository.ErrStaleRevision):
		return fmt.Errorf("%s was modified concurrently, retry: %w", what, ErrConflict)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%s references a missing record: %w", what, ErrValidation)
	default:
		return fmt.Errorf("%s: %w", what, err)
	}
}
