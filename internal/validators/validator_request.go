package validators

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/MKhiriev/go-feed/internal/crypto"
	"github.com/MKhiriev/go-feed/models"
	validation "github.com/go-ozzo/ozzo-validation"
)

// MinPasswordLength is counted in characters, not bytes.
const MinPasswordLength = 6

// emailPattern is intentionally loose: something, '@', something, '.', something.
var emailPattern = regexp.MustCompile(`.+@.+\..+`)

type RequestValidator struct{}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(value)
	case *models.RegisterRequest:
		return v.validateRegister(*value)

	case models.LoginRequest:
		return v.validateLogin(value)
	case *models.LoginRequest:
		return v.validateLogin(*value)

	case models.CreatePostRequest:
		return v.validateCreatePost(value)
	case *models.CreatePostRequest:
		return v.validateCreatePost(*value)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *RequestValidator) validateRegister(req models.RegisterRequest) error {
	if err := requireAll(req.Name, req.Email, req.Password); err != nil {
		return ErrMissingRegistrationFields
	}

	if err := validation.Validate(req.Email, validation.Match(emailPattern)); err != nil {
		return ErrInvalidEmail
	}

	if err := validation.Validate(req.Password, validation.RuneLength(MinPasswordLength, 0)); err != nil {
		return ErrPasswordTooShort
	}

	if err := validation.Validate(req.Password, validation.By(maxBytes(crypto.MaxPasswordBytes))); err != nil {
		return ErrPasswordTooLong
	}

	return nil
}

func (v *RequestValidator) validateLogin(req models.LoginRequest) error {
	if err := requireAll(req.Email, req.Password); err != nil {
		return ErrMissingLoginFields
	}

	return nil
}

func (v *RequestValidator) validateCreatePost(req models.CreatePostRequest) error {
	if err := requireAll(req.Title, req.Description); err != nil {
		return ErrMissingPostFields
	}

	return nil
}

func requireAll(values ...string) error {
	for _, value := range values {
		if err := validation.Validate(value, validation.Required); err != nil {
			return err
		}
	}

	return nil
}

var errTooManyBytes = errors.New("value is too long")

func maxBytes(limit int) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if len(s) > limit {
			return errTooManyBytes
		}
		return nil
	}
}
