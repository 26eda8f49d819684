package tokmatch

import "errors"

// ErrMalformedPattern is returned by Compile when the pattern text is
// invalid: an alternation missing its closing paren, an empty option, or
// an alternation with a single option and no pipe. Compile failures wrap
// this sentinel, so callers can test with errors.Is.
var ErrMalformedPattern = errors.New("malformed pattern")
