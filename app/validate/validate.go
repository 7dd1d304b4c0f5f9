package validate

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FieldError names the payload field that failed and why. It is the only
// error kind Struct returns for rule violations, so handlers can map it to a
// 400 without inspecting validator internals.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string { return fmt.Sprintf("%s: %s", e.Field, e.Reason) }

type Validator struct{ v *validator.Validate }

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	return &Validator{v: v}
}

// Struct checks the tagged rules on a request DTO. Pointer fields tagged
// omitempty are skipped when nil, which is what gives partial updates their
// "absent means untouched" semantics.
func (va *Validator) Struct(s any) error {
	err := va.v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	return &FieldError{Field: jsonName(fe.Field()), Reason: reason(fe)}
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

// jsonName lowers the exported Go field name to its snake_case json key.
// The DTO fields here are single words plus UserID, so the mapping stays a
// small table rather than a tag reflection pass.
func jsonName(field string) string {
	switch field {
	case "UserID":
		return "user_id"
	case "Name":
		return "name"
	case "Email":
		return "email"
	case "Password":
		return "password"
	case "Title":
		return "title"
	case "Description":
		return "description"
	case "Owner":
		return "owner"
	default:
		return field
	}
}
