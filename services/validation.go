package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"preorder/pkg/apperr"

	"github.com/go-playground/validator/v10"
)

// newValidator reports field names by their json tag so messages match the request body.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperr.Validation("%v", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param()))
		case "datetime":
			msgs = append(msgs, fmt.Sprintf("%s must be a date (YYYY-MM-DD)", fe.Field()))
		case "email":
			msgs = append(msgs, fmt.Sprintf("%s must be an email address", fe.Field()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", fe.Field()))
		}
	}
	return apperr.Validation("%s", strings.Join(msgs, "; "))
}
