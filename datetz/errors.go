package datetz

import "fmt"

// InvalidArgumentError reports API misuse: an unknown zone identifier, an
// unsupported arithmetic or set unit, or a cross-zone comparison. It is
// distinct from [FormatError] so callers can branch on bad API usage
// versus bad input strings.
type InvalidArgumentError struct {
	msg string
}

// Error implements the error interface.
func (e *InvalidArgumentError) Error() string { return e.msg }

// unknownZoneError returns an invalid-argument error for a zone missing
// from the static table.
func unknownZoneError(zone string) error {
	return &InvalidArgumentError{fmt.Sprintf("unknown time zone %q", zone)}
}

// unsupportedUnitError returns an invalid-argument error for a unit an
// operation does not support.
func unsupportedUnitError(op string, unit Unit) error {
	return &InvalidArgumentError{fmt.Sprintf("%s: unsupported unit %s", op, unit)}
}

// crossZoneError returns an invalid-argument error for a comparison across
// zone identifiers.
func crossZoneError(a, b string) error {
	return &InvalidArgumentError{fmt.Sprintf("cannot compare values in different zones %q and %q", a, b)}
}

// FormatError reports a structural mismatch between a format pattern and
// an input string during parsing.
type FormatError struct {
	Pattern string
	Input   string
	msg     string
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	return fmt.Sprintf("parse %q with pattern %q: %s", e.Input, e.Pattern, e.msg)
}

// formatError returns a FormatError for the given pattern and input.
func formatError(pattern, input, format string, args ...any) error {
	return &FormatError{Pattern: pattern, Input: input, msg: fmt.Sprintf(format, args...)}
}
