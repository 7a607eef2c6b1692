// utils/valid.go
package utils

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// User facing form messages.
const (
	MsgRequiredFields = "Todos los campos son obligatorios."
	MsgShortPassword  = "La contraseña debe tener al menos 6 caracteres."
	MsgBadRequest     = "Error al procesar la solicitud."
	MsgNoChanges      = "No se detectaron cambios para actualizar."
)

// FormErrorMessage translates a validation error into the message shown on
// the form.
func FormErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return MsgBadRequest
	}

	for _, fe := range verrs {
		if fe.Field() == "Password" && fe.Tag() == "min" {
			return MsgShortPassword
		}
	}
	return MsgRequiredFields
}
