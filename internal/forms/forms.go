// Package forms holds the editable drafts behind the marketplace dialogs and
// the validation rules they must pass before touching the store.
package forms

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/terrabrand/Prompt101/internal/market"
)

// Errors maps a form field name to the message shown under it.
type Errors map[string]string

// Get returns the message for field, or "" when the field is valid.
func (e Errors) Get(field string) string {
	return e[field]
}

func (e Errors) Valid() bool {
	return len(e) == 0
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	must(v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		_, ok := market.ParseCategory(fl.Field().String())
		return ok
	}))
	must(v.RegisterValidation("worktype", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		for _, w := range market.WorkTypes() {
			if string(w) == s {
				return true
			}
		}
		return false
	}))
	return v
}

func must(err error) {
	if err != nil {
		panic(fmt.Sprintf("forms: register validation: %v", err))
	}
}

// check validates form and translates the failures through messages, keyed
// by "Field.tag". Only the first failure of each field is kept.
func check(form any, messages map[string]string) Errors {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Errors{"form": err.Error()}
	}
	out := make(Errors, len(verrs))
	for _, fe := range verrs {
		if _, seen := out[fe.Field()]; seen {
			continue
		}
		msg, ok := messages[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg = fmt.Sprintf("%s is invalid", fe.Field())
		}
		out[fe.Field()] = msg
	}
	return out
}
