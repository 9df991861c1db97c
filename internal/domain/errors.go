package domain

import "errors"

var (
	ErrPackageNotFound = errors.New("package not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrUserNotFound    = errors.New("user not found")
)

var (
	ErrSlugTaken   = errors.New("slug is already taken")
	ErrStatusFinal = errors.New("booking status is final")
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenInvalid       = errors.New("token is invalid")
)

var (
	ErrValidation = errors.New("validation error")
)
