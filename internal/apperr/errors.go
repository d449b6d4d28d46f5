package apperr

import "errors"

// ErrRejected is returned when raw user input cannot be reduced to a
// registrable domain name. It is a normal outcome, not an exceptional one:
// callers should branch with errors.Is(err, apperr.ErrRejected) and report
// the input as unusable rather than fail the process.
var ErrRejected = errors.New("input rejected")

// ErrUnsupportedRecordType is returned when a record-type string received at
// an external boundary (CLI flag, HTTP query) does not name a known DNS
// record type. It signals a caller contract violation and is the only error
// the resolution pipeline propagates; every environmental failure degrades to
// an empty field instead.
var ErrUnsupportedRecordType = errors.New("unsupported record type")

// ErrRequestFailed is returned by HTTP-based collaborators when a request
// fails at the transport level or the server responds with a non-2xx status.
// Use errors.Is(err, apperr.ErrRequestFailed) to detect request failures
// uniformly.
var ErrRequestFailed = errors.New("request failed")
