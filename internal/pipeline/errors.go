package pipeline

import "errors"

var (
	// ErrUnknownTransform indicates that a part names a transform that is not registered.
	ErrUnknownTransform = errors.New("unknown transform")

	// ErrInvalidPattern indicates that a configured pattern does not compile
	// or lacks the capture group it needs.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrNoParts indicates that the configuration defines no output parts.
	ErrNoParts = errors.New("no output parts configured")
)
