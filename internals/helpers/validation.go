package helper

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ValidationFieldErrors mengubah error validator.v10 menjadi map per-field
// untuk JsonValidationError.
func ValidationFieldErrors(err error) map[string][]string {
	out := map[string][]string{}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		out["body"] = []string{"Input tidak valid"}
		return out
	}
	for _, fe := range ve {
		field := fe.Field()
		var msg string
		switch fe.Tag() {
		case "required":
			msg = "wajib diisi"
		case "email":
			msg = "format email tidak valid"
		case "max":
			msg = fmt.Sprintf("maksimal %s karakter", fe.Param())
		case "min":
			msg = fmt.Sprintf("minimal %s karakter", fe.Param())
		case "uuid":
			msg = "harus berupa UUID yang valid"
		case "oneof":
			msg = "nilai tidak termasuk pilihan yang diizinkan"
		default:
			msg = "tidak valid"
		}
		out[field] = append(out[field], msg)
	}
	return out
}
