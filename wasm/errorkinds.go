package wasm

import (
	"fmt"

	"github.com/wippyai/wasm-decode/errors"
)

// decodeErr builds a positioned decode error. offset is the byte
// position at which the problem was detected — for a truncation, that's
// where the read began; for everything else, it's the cursor's position
// at the moment the caller noticed the problem.
func decodeErr(offset int, kind errors.Kind, format string, args ...any) *errors.Error {
	return errors.New(errors.PhaseDecode, kind).
		Offset(offset).
		Detail(format, args...).
		Build()
}

func errTruncation(offset int, what string) *errors.Error {
	return decodeErr(offset, errors.KindTruncated, "unable to read %s: truncated", what)
}

func errMalformedLEB(offset int, what string) *errors.Error {
	return decodeErr(offset, errors.KindMalformedLEB, "unable to read %s leb128", what)
}

func errOutOfRange(offset int, format string, args ...any) *errors.Error {
	return decodeErr(offset, errors.KindOutOfBounds, format, args...)
}

func errInvalidTag(offset int, format string, args ...any) *errors.Error {
	return decodeErr(offset, errors.KindInvalidEnum, format, args...)
}

func errInvalidUTF8(offset int) *errors.Error {
	return decodeErr(offset, errors.KindInvalidUTF8, "invalid UTF-8 encoding")
}

func errOrdering(offset int, format string, args ...any) *errors.Error {
	return decodeErr(offset, errors.KindOrdering, format, args...)
}

func errUnexpectedOpcode(offset int, format string, args ...any) *errors.Error {
	return decodeErr(offset, errors.KindUnexpectedOpcode, format, args...)
}

func errUnfinishedWindow(offset int, format string, args ...any) *errors.Error {
	return decodeErr(offset, errors.KindUnfinishedWindow, format, args...)
}

func errSinkFailure(offset int, callback string, cause error) *errors.Error {
	return errors.New(errors.PhaseDecode, errors.KindSinkFailure).
		Offset(offset).
		Detail(fmt.Sprintf("%s failed", callback)).
		Cause(cause).
		Build()
}
