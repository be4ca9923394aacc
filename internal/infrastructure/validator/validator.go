package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	usecasecontract "github.com/brandkit-io/brandkit-backend/internal/usecase/contract"
)

// AppValidator implements the usecase IValidator interface.
type AppValidator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance.
func NewValidator() usecasecontract.IValidator {
	return &AppValidator{validate: validator.New()}
}

// ValidateEmail checks if the email format is valid.
func (av *AppValidator) ValidateEmail(email string) error {
	return av.validate.Var(email, "required,email")
}

// ValidatePassword checks the minimum password requirements.
func (av *AppValidator) ValidatePassword(password string) error {
	if len(password) < 6 {
		return fmt.Errorf("password must be at least 6 characters long")
	}
	return nil
}

// ValidateHexColor checks if the value is a #-prefixed hex color.
func (av *AppValidator) ValidateHexColor(color string) error {
	return av.validate.Var(color, "required,hexcolor")
}
