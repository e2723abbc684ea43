package service

import "errors"

var (
	ErrUnauthorized     = errors.New("unauthorized")
	ErrReceiptRequired  = errors.New("receipt required")
	ErrAlreadySubmitted = errors.New("already submitted")
	ErrNothingToUpdate  = errors.New("nothing to update")
)
