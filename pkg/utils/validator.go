package util

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func init() {
	Validate = validator.New()

	Validate.RegisterValidation("notblank", validateNotBlank)
}

// validateNotBlank menolak string yang kosong setelah di-trim. Tag "required"
// saja tidak cukup karena "   " tetap lolos.
func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

type ErrorResponse struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Msg   string `json:"message"`
}

func ValidateStruct(s interface{}) []*ErrorResponse {
	var errors []*ErrorResponse
	err := Validate.Struct(s)
	if err != nil {

		for _, err := range err.(validator.ValidationErrors) {
			var element ErrorResponse
			element.Field = err.Field()
			element.Tag = err.Tag()

			switch err.Tag() {
			case "required":
				element.Msg = fmt.Sprintf("Kolom '%s' wajib diisi.", element.Field)
			case "notblank":
				element.Msg = fmt.Sprintf("Kolom '%s' tidak boleh kosong.", element.Field)
			case "max":
				element.Msg = fmt.Sprintf("Kolom '%s' harus memiliki maksimal %s karakter/nilai.", element.Field, err.Param())
			case "email":
				element.Msg = "Format email tidak valid."
			case "datetime":
				element.Msg = fmt.Sprintf("Kolom '%s' harus berformat tanggal %s.", element.Field, err.Param())
			case "oneof":
				element.Msg = fmt.Sprintf("Kolom '%s' harus salah satu dari: %s.", element.Field, err.Param())
			default:

				element.Msg = fmt.Sprintf("Kolom '%s' gagal validasi untuk tag '%s'.", element.Field, element.Tag)
			}
			errors = append(errors, &element)
		}
	}
	return errors
}
