package entity

import "errors"

// Domain errors
var (
	// Dialogue errors
	ErrDialogueNotFound = errors.New("dialogue not found")
	ErrDialogueComplete = errors.New("dialogue is already complete")
	ErrEmptyUtterance   = errors.New("utterance must not be empty")

	// Field and catalog errors
	ErrUnknownField      = errors.New("unknown field id")
	ErrInvalidFieldValue = errors.New("invalid field value")

	// Project request errors
	ErrRequestNotFound = errors.New("project request not found")
	ErrRequestNotReady = errors.New("project request is not complete yet")

	// Validation errors
	ErrMissingField     = errors.New("required field is missing")
	ErrInvalidParameter = errors.New("invalid parameter")
)
