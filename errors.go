package blurlock

import "errors"

// Failure classes. Every error returned by this package wraps one of them,
// so callers can tell them apart with errors.Is.
var (
	ErrDisplay   = errors.New("cannot open display")
	ErrCapture   = errors.New("cannot capture screen")
	ErrDecode    = errors.New("cannot decode image")
	ErrTransform = errors.New("cannot transform image")
	ErrLocker    = errors.New("cannot run locker")
)
