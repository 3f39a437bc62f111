package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrMissingRegistrationFields = errors.New("name, email and password are required")
	ErrInvalidEmail              = errors.New("invalid email address")
	ErrPasswordTooShort          = errors.New("password is too short")
	ErrPasswordTooLong           = errors.New("password is too long")

	ErrMissingLoginFields = errors.New("email and password are required")

	ErrMissingPostFields = errors.New("title and description are required")
)
