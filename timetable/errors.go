package timetable

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is wrapped by every error returned from a Timetable operation.
var ErrInvalidArgument = errors.New("invalid argument")

var (
	ErrUnknownTrain      = fmt.Errorf("%w: unknown train", ErrInvalidArgument)
	ErrTimeCollision     = fmt.Errorf("%w: stop time already taken", ErrInvalidArgument)
	ErrOutOfInterval     = fmt.Errorf("%w: stop time outside departure/arrival interval", ErrInvalidArgument)
	ErrTimeOrder         = fmt.Errorf("%w: stop time breaks schedule order", ErrInvalidArgument)
	ErrDuplicateStation  = fmt.Errorf("%w: station already on schedule", ErrInvalidArgument)
	ErrInvalidStopValues = fmt.Errorf("%w: invalid stop", ErrInvalidArgument)
)
