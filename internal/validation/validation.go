// Package validation checks candidate Job and Application records
// against their schema rules. It is independent of the storage backend
// so the rules are unit-testable without a live database.
package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/yourorg/jobboard/internal/domain"
)

var validate = newValidator()

// E.164 with a mandatory leading plus. The built-in e164 tag makes the
// plus optional, which is looser than the wire format we accept.
var phoneRegexp = regexp.MustCompile(`^\+[1-9]\d{1,14}$`)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON field names so errors match the wire format
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRegexp.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	v.RegisterStructValidation(salaryRange, domain.Salary{})

	return v
}

// salaryRange enforces min <= max once both bounds are present.
func salaryRange(sl validator.StructLevel) {
	s := sl.Current().Interface().(domain.Salary)
	if s.Min != nil && s.Max != nil && *s.Max < *s.Min {
		sl.ReportError(s.Max, "max", "Max", "gtefield", "min")
	}
}

// ValidateJob validates a candidate job record. It returns nil or a
// *domain.ValidationError listing every violated field rule.
func ValidateJob(job *domain.Job) error {
	return translate(validate.Struct(job))
}

// ValidateApplication validates a candidate application record.
func ValidateApplication(app *domain.Application) error {
	return translate(validate.Struct(app))
}

func translate(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// InvalidValidationError: a nil or non-struct value was passed
		return domain.NewValidationError("", "invalid record")
	}

	out := &domain.ValidationError{Fields: make([]domain.FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, domain.FieldError{
			Field: fieldPath(fe.Namespace()),
			Rule:  fe.Tag(),
		})
	}
	return out
}

// fieldPath strips the root struct name from a validator namespace,
// leaving the JSON path of the offending field ("salary.max").
func fieldPath(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
