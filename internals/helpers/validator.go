package helper

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Satu instance validator untuk semua DTO (thread-safe).
var Validate = validator.New()

// ValidateStruct menjalankan tag `validate` dan mengembalikan map
// field → pesan, siap dipakai JsonValidationError. Nil kalau lolos.
func ValidateStruct(s any) map[string][]string {
	if err := Validate.Struct(s); err != nil {
		ve, ok := err.(validator.ValidationErrors)
		if !ok {
			return map[string][]string{"_": {err.Error()}}
		}
		out := make(map[string][]string, len(ve))
		for _, fe := range ve {
			field := strings.ToLower(fe.Field())
			out[field] = append(out[field], fe.Tag())
		}
		return out
	}
	return nil
}
