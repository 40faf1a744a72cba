package parse

import "errors"

var (
	ErrParse       = errors.New("parse error")
	ErrUnsupported = errors.New("unsupported syntax")
	ErrNoSuchID    = errors.New("no node with requested id")
)
