package binder

import (
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// isbnValidator ensures the value is exactly 13 characters long or the empty
// string. The empty string is allowed so that the same validator works on
// optional update fields; pair it with `required` when the value must be
// present.
func isbnValidator(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return utf8.RuneCountInString(value) == 13
}
