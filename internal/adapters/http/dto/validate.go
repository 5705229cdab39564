package dto

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/jsamuelsen11/payroo-gateway/internal/domain"
)

// structValidator checks request DTO tags and renders failures in English.
type structValidator struct {
	validate   *validator.Validate
	translator ut.Translator
}

var requestValidator = mustNewStructValidator()

func mustNewStructValidator() *structValidator {
	v, err := newStructValidator()
	if err != nil {
		panic(err)
	}
	return v
}

func newStructValidator() (*structValidator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}
	return &structValidator{validate: validate, translator: trans}, nil
}

// jsonFieldName reports fields by their JSON name so error locations match
// the request body.
func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

// Struct validates s and converts tag failures to a *domain.ValidationError
// keyed by JSON path, e.g. "bank.bsb".
func (v *structValidator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		// Drop the root struct name from the namespace.
		_, path, _ := strings.Cut(fe.Namespace(), ".")
		if _, seen := fields[path]; !seen {
			fields[path] = fe.Translate(v.translator)
		}
	}
	return &domain.ValidationError{Fields: fields}
}
