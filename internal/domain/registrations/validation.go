package registrations

import (
	"errors"
	"net/url"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Reportar errores con el nombre del campo del form, no el del struct.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidationError junta todos los campos faltantes y desconocidos, no solo el primero.
type ValidationError struct {
	Missing []string
	Unknown []string
}

func (e *ValidationError) Error() string {
	if len(e.Missing) > 0 {
		return "Missing: " + strings.Join(e.Missing, ", ")
	}
	return "Unknown: " + strings.Join(e.Unknown, ", ")
}

// Validate exige los siete campos no vacíos. No hace trim: " " cuenta como presente.
func (s Submission) Validate() error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	missing := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		missing = append(missing, fe.Field())
	}
	return &ValidationError{Missing: missing}
}

// FromForm arma la Submission desde los valores del body.
// Campos ausentes quedan vacíos; nombres fuera de FieldNames se reportan como Unknown.
func FromForm(values url.Values) (Submission, error) {
	s := Submission{
		Name:          values.Get("name"),
		FamilyName:    values.Get("familyname"),
		CallPhone:     values.Get("callphone"),
		Email:         values.Get("email"),
		MomName:       values.Get("mom_name"),
		MomFamilyName: values.Get("mom_family_name"),
		FirstPet:      values.Get("first_pet"),
	}

	known := make(map[string]struct{}, len(FieldNames))
	for _, n := range FieldNames {
		known[n] = struct{}{}
	}
	var unknown []string
	for k := range values {
		if _, ok := known[k]; !ok {
			unknown = append(unknown, k)
		}
	}
	sort.Strings(unknown)

	if err := s.Validate(); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			verr.Unknown = unknown
		}
		return s, err
	}
	if len(unknown) > 0 {
		return s, &ValidationError{Unknown: unknown}
	}
	return s, nil
}
