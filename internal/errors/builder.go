package errors

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
)

// ErrorBuilder accumulates context onto an error before it is marked
// with one of the package sentinels. It deliberately does not implement
// the error interface: a chain that never calls Mark cannot be returned
// by accident, so every error leaving a service carries a sentinel the
// HTTP layer can map to a status code.
type ErrorBuilder struct {
	err error
}

// NewError starts a chain from a fresh message
func NewError(msg string) *ErrorBuilder {
	return &ErrorBuilder{err: errors.New(msg)}
}

// WithError starts a chain by wrapping an existing error, e.g. a
// driver or binding failure
func WithError(err error) *ErrorBuilder {
	return &ErrorBuilder{err: err}
}

// WithMessage prefixes internal context onto the error message.
// Operators see this in logs; API callers never do.
func (b *ErrorBuilder) WithMessage(msg string) *ErrorBuilder {
	b.err = errors.WithMessage(b.err, msg)
	return b
}

// WithHint attaches the message shown to API callers. The error
// handler middleware surfaces the first non-empty hint as the display
// message of the response.
func (b *ErrorBuilder) WithHint(hint string) *ErrorBuilder {
	b.err = errors.WithHint(b.err, hint)
	return b
}

// WithHintf is WithHint with formatting
func (b *ErrorBuilder) WithHintf(format string, args ...any) *ErrorBuilder {
	b.err = errors.WithHintf(b.err, format, args...)
	return b
}

// WithReportableDetails attaches structured details that are safe to
// return to the caller, e.g. the offending field values of a rejected
// request. The map is carried as a JSON safe-detail payload and decoded
// again by the error handler middleware.
func (b *ErrorBuilder) WithReportableDetails(details map[string]any) *ErrorBuilder {
	marshaled, err := json.Marshal(details)
	if err != nil {
		return b
	}
	b.err = errors.WithSafeDetails(b.err, "__json__:%s", errors.Safe(string(marshaled)))
	return b
}

// Mark stamps the chain with a sentinel and ends it, yielding the error
func (b *ErrorBuilder) Mark(reference error) error {
	b.err = errors.Mark(b.err, reference)
	return b.err
}

// Error yields the built error without marking it. Prefer Mark.
func (b *ErrorBuilder) Error() error {
	return b.err
}
