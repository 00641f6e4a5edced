package account

import "github.com/heartmarshall/truefeedback-backend/internal/domain"

// RegisterInput holds sign-up parameters.
type RegisterInput struct {
	Username string `json:"username" validate:"required,max=64,handle"`
	Email    string `json:"email"    validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

func (i *RegisterInput) normalize() {
	i.Username = domain.NormalizeHandle(i.Username)
	i.Email = domain.NormalizeEmail(i.Email)
}

// Validate validates the sign-up input.
func (i RegisterInput) Validate() error {
	return domain.ValidateStruct(i)
}

// LoginInput holds sign-in parameters.
type LoginInput struct {
	Email    string
	Password string
}

// Validate validates the sign-in input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
