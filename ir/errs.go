package ir

import "errors"

var (
	// ErrUnexpectedKind reports a node kind that a total structural
	// operation (conversion, encoding, visiting) does not recognize.
	// Encountering it means version skew or a corrupted tree, never a
	// recoverable runtime condition.
	ErrUnexpectedKind = errors.New("unexpected expression kind")
)
