package xyz2sgf

import "fmt"

// DecodeError reports bytes that are not valid under the declared encoding.
type DecodeError struct {
	Encoding string
	Reason   string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %s", e.Encoding, e.Reason)
}

// DetectError reports input whose format could not be identified.
type DetectError struct {
	Filename string
	Reason   string
}

func (e *DetectError) Error() string {
	if e.Filename != "" {
		return fmt.Sprintf("detect %s: %s", e.Filename, e.Reason)
	}
	return "detect: " + e.Reason
}

// ParseError reports a structural violation in a source file. Line is
// 1-based and zero when the location is not known.
type ParseError struct {
	Format Format
	Line   int
	Field  string
	Reason string
}

func (e *ParseError) Error() string {
	msg := "parse " + e.Format.String()
	if e.Line > 0 {
		msg += fmt.Sprintf(" line %d", e.Line)
	}
	if e.Field != "" {
		msg += " (" + e.Field + ")"
	}
	return msg + ": " + e.Reason
}

// Warning is a recoverable per-record anomaly. Only the UGF parser emits
// warnings; GIB and NGF are strict and fail outright.
type Warning struct {
	Line   int
	Reason string
}

func (w Warning) String() string {
	if w.Line > 0 {
		return fmt.Sprintf("line %d: %s", w.Line, w.Reason)
	}
	return w.Reason
}
