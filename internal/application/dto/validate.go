package dto

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/zyck/property-admin/internal/domain/listing"
)

var validate = newValidator()

// newValidator registra pagesize: uno de listing.PageSizeOptions.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	err := v.RegisterValidation("pagesize", func(fl validator.FieldLevel) bool {
		return listing.ValidPageSize(int(fl.Field().Int()))
	})
	if err != nil {
		panic(err)
	}
	return v
}

// Validate aplica las etiquetas `validate` del DTO. El error lista los campos que fallan.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("campos inválidos: %s", strings.Join(fields, ", "))
}
