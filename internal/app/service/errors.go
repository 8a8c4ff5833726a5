package service

import "errors"

var (
	// ErrEmptyURL reports a missing or empty destination URL.
	ErrEmptyURL = errors.New("url is required")

	// ErrInvalidURL reports a destination URL without an http(s) scheme.
	ErrInvalidURL = errors.New("url must start with http:// or https://")

	// ErrCodeTaken reports a custom code that is already assigned.
	ErrCodeTaken = errors.New("custom code already exists")

	// ErrNotFound reports a short code with no stored mapping.
	ErrNotFound = errors.New("short url not found")

	// ErrCodeExhausted reports that every generation attempt collided.
	ErrCodeExhausted = errors.New("could not generate unique code")
)
