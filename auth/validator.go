package auth

import (
	"fmt"

	"portal-messaging/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ProvisionRequest carries admin-entered account details.
// The role must be one of the three portal roles; it is immutable after
// creation, so a typo here would be permanent.
type ProvisionRequest struct {
	Username string `validate:"required,min=1,max=64"`
	Password string `validate:"required"`
	Role     string `validate:"required,oneof=student teacher admin"`
}

func ValidateProvision(req ProvisionRequest) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidAccount, err)
	}
	return nil
}
