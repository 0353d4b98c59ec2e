package x402check

import "errors"

// Input handling error definitions

var (
	// ErrInvalidInput indicates the caller passed an unsupported input
	// type to the public API.
	ErrInvalidInput = errors.New("unsupported input type")

	// ErrInvalidJSON indicates the input could not be parsed as JSON.
	ErrInvalidJSON = errors.New("malformed JSON")

	// ErrInvalidDocument indicates the input parsed to something other
	// than a JSON object.
	ErrInvalidDocument = errors.New("document is not a JSON object")

	// ErrUnrecognizedFormat indicates the document matches no known
	// configuration shape.
	ErrUnrecognizedFormat = errors.New("unrecognized configuration format")
)
