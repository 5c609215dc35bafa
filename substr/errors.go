package substr

import "errors"

// ErrEmptyNeedle is returned when a needle of length 0 is given to a
// table builder or context constructor.
var ErrEmptyNeedle = errors.New("substr: the needle may not be empty")

// ErrNeedleTooLong is returned when a needle exceeds MaxNeedleLen.
var ErrNeedleTooLong = errors.New("substr: needle exceeds the maximum supported length")

// ErrBufferTooSmall is returned by NewContext when the caller-supplied
// buffer is smaller than ContextBufferSize(needleLen).
var ErrBufferTooSmall = errors.New("substr: lookbehind buffer is smaller than ContextBufferSize(needleLen)")

// ErrNeedleMismatch is the value Feed panics with when the needle passed in
// differs in length from the one the context was initialized with; this is the
// one precondition Feed can check cheaply without storing a copy of the
// needle bytes.
var ErrNeedleMismatch = errors.New("substr: needle length does not match the context's initialized needle")
