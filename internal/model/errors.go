package model

import "errors"

var (
	ErrValidation        = errors.New("validation error")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrSessionNotFound   = errors.New("session not found")
	ErrInternal          = errors.New("internal error")
)
