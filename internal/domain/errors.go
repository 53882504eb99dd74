package domain

import "errors"

var (
	ErrUnknownActivityType = errors.New("unknown activity type")
	ErrUnknownCategory     = errors.New("unknown activity category")
	ErrInvalidDetails      = errors.New("invalid activity details")
	ErrUserNotFound        = errors.New("user not found")
	ErrBabyNotFound        = errors.New("baby not found")
	ErrSkipNotFound        = errors.New("skip not found")
)
