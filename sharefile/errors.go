package sharefile

import "errors"

var (
	// ErrInvalidDocument is returned when the input is not a share document.
	ErrInvalidDocument = errors.New("sharefile: invalid document")

	// ErrMissingKeys is returned when the "keys" object or its "k" field is absent.
	ErrMissingKeys = errors.New("sharefile: missing keys")

	// ErrDuplicateEntry is returned when a share id, or a field within a share
	// or the keys object, appears twice.
	ErrDuplicateEntry = errors.New("sharefile: duplicate share entry")

	// ErrInvalidSelection is returned for an unknown selection strategy.
	ErrInvalidSelection = errors.New("sharefile: invalid selection")
)
