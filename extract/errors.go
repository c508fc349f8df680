package extract

import "errors"

var (
	// ErrUnsupportedFormat is returned for format tags outside the supported set.
	ErrUnsupportedFormat = errors.New("unsupported document format")

	// ErrCorruptDocument is returned when a payload cannot be decoded as its
	// declared format. Fatal for the document; never retried.
	ErrCorruptDocument = errors.New("corrupt document")
)
