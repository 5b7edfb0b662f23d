package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validation failed: %w", err)
	}

	var errMsgs []string
	for _, e := range verrs {
		if e.Param() != "" {
			errMsgs = append(errMsgs, fmt.Sprintf("%s must satisfy %s=%s", e.Field(), e.Tag(), e.Param()))
			continue
		}
		errMsgs = append(errMsgs, fmt.Sprintf("%s must satisfy %s", e.Field(), e.Tag()))
	}
	return fmt.Errorf("validation failed: %s", strings.Join(errMsgs, "; "))
}
