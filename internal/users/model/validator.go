package model

import (
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate
	once     sync.Once
)

func GetValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
		// Report fields by their json name so errors match the wire format
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		// required on *time.Time is satisfied by any non-nil pointer;
		// nonzerotime checks the pointed-to value instead
		_ = validate.RegisterValidation("nonzerotime", func(fl validator.FieldLevel) bool {
			t, ok := fl.Field().Interface().(time.Time)
			return ok && !t.IsZero()
		})
	})
	return validate
}

// FieldError is one violated rule: the json field path and a
// human-readable message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every violated rule of one candidate, in
// field order. It is a first-class error variant so callers distinguish
// it from infrastructure errors by type.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return strings.Join(msgs, "; ")
}

// Messages returns the violation messages in field order.
func (e *ValidationError) Messages() []string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return msgs
}

// Validate applies the strict rule set: all six fields required, email
// syntax, parseable dates. It never stops at the first violation.
func (c *CandidateUser) Validate() *ValidationError {
	return toValidationError(GetValidator().Struct(c))
}

// Validate applies the partial rule set: any field present must satisfy
// the same format rule as strict mode.
func (u *UserUpdate) Validate() *ValidationError {
	return toValidationError(GetValidator().Struct(u))
}

func toValidationError(err error) *ValidationError {
	if err == nil {
		return nil
	}

	verr, ok := err.(validator.ValidationErrors)
	if !ok {
		return &ValidationError{Fields: []FieldError{{Message: err.Error()}}}
	}

	fields := make([]FieldError, 0, len(verr))
	for _, fe := range verr {
		fields = append(fields, FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
	}
	return &ValidationError{Fields: fields}
}

// fieldMessage keeps the user-facing wording stable per field and rule.
func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "firstName":
		return "First name is required"
	case "lastName":
		return "Last name is required"
	case "phoneNumber":
		return "Phone number is required"
	case "email":
		if fe.Tag() == "email" {
			return "Email must be a valid email address"
		}
		return "Email is required"
	case "createdAt":
		return "Created At must be a valid date"
	case "updatedAt":
		return "Updated At must be a valid date"
	}
	return "Field validation for '" + fe.Field() + "' failed on the '" + fe.Tag() + "' tag"
}
