package user

import "errors"

var (
	ErrUserNotFound = errors.New("user not found")
	ErrNameRequired = errors.New("full name is required")
	ErrInvalidEmail = errors.New("invalid email format")
	ErrEmailTaken   = errors.New("email already registered")
)
