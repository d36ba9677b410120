package store

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/Domenick1991/aerolinea/internal/domain"
	"github.com/go-playground/validator/v10"
)

type keyed interface {
	Key() int64
}

// nextID is max(existing)+1, or 1 for an empty collection.
func nextID[T keyed](items []T) int64 {
	var highest int64
	for _, item := range items {
		if item.Key() > highest {
			highest = item.Key()
		}
	}
	return highest + 1
}

func indexByID[T keyed](items []T, id int64) int {
	return indexWhere(items, func(item T) bool { return item.Key() == id })
}

func indexWhere[T any](items []T, match func(T) bool) int {
	for i, item := range items {
		if match(item) {
			return i
		}
	}
	return -1
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateInput reports every failing field in one ValidationError, using the
// JSON names clients sent.
func validateInput(op string, in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &domain.Error{Op: op, Kind: domain.ErrValidation, Err: err}
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required", "min":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
		case "gt":
			msgs = append(msgs, fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}
	return domain.NewError(op, domain.ErrValidation, "%s", strings.Join(msgs, "; "))
}
