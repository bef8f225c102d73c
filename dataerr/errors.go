// Package dataerr provides the structured error type reported by the
// yangdata libraries for schema validation and document structure
// failures.
package dataerr

import (
	"bytes"
	"errors"
	"fmt"
)

// Kind represents the layer an error occurred at
type Kind int

const (
	// KindValidation is a schema validation error (leaf value
	// rejection, cardinality violation)
	KindValidation Kind = iota
	// KindStructure is a document structure contract violation by
	// the event source (e.g. close without matching open)
	KindStructure
	// KindParse is an error tokenizing the input document
	KindParse
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindStructure:
		return "structure"
	case KindParse:
		return "parse"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k *Kind) UnmarshalText(b []byte) error {
	b = bytes.TrimSpace(b)
	switch string(b) {
	case "validation":
		*k = KindValidation
	case "structure":
		*k = KindStructure
	case "parse":
		*k = KindParse
	default:
		return errors.New("unknown value")
	}
	return nil
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Severity represents an error's severity enumerate
type Severity int

const (
	// SeverityError indicates "error" level
	SeverityError Severity = iota
	// SeverityWarning indicates "warning" level, used for
	// diagnostics which do not abort a conversion
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

func (s Severity) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Severity) UnmarshalText(b []byte) error {
	b = bytes.TrimSpace(b)
	switch string(b) {
	case "error":
		*s = SeverityError
	case "warning":
		*s = SeverityWarning
	default:
		return errors.New("unknown value")
	}
	return nil
}

// Error represents a yangdata conversion error
type Error struct {
	Kind     Kind     `xml:"error-kind" json:"error-kind"`
	Tag      string   `xml:"error-tag" json:"error-tag"`
	Severity Severity `xml:"error-severity" json:"error-severity"`
	// Path is the data tree path the error occurred at, when known
	Path      string `xml:"error-path,omitempty" json:"error-path,omitempty"`
	Namespace string `xml:"error-namespace,omitempty" json:"error-namespace,omitempty"`
	// Element is the local name of the element the error concerns
	Element string `xml:"bad-element,omitempty" json:"bad-element,omitempty"`
	Message string `xml:"error-message,omitempty" json:"error-message,omitempty"`
}

func (e Error) Error() string {
	s := fmt.Sprintf("%s error tag:%s", e.Kind, e.Tag)
	if e.Path != "" {
		s += " path:" + e.Path
	}
	if e.Element != "" {
		s += " element:" + e.Element
	}
	if e.Namespace != "" {
		s += " namespace:" + e.Namespace
	}
	if e.Message != "" {
		s += " " + e.Message
	}
	return s
}

// Is reports whether err is (or wraps) an *Error of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// InvalidValue returns a validation error for a leaf value rejected by
// its schema type restrictions.
func InvalidValue(elementName string, opts ...Option) *Error {
	e := &Error{Tag: "invalid-value", Element: elementName}
	for _, opt := range opts {
		opt(e)
	}
	// invalid-value is always a validation error
	e.Kind = KindValidation
	return e
}

// TooManyElements returns a validation error for a list or leaf whose
// schema cardinality was exceeded.
func TooManyElements(elementName string, opts ...Option) *Error {
	e := &Error{Tag: "too-many-elements", Element: elementName}
	for _, opt := range opts {
		opt(e)
	}
	e.Kind = KindValidation
	return e
}

// UnknownElement returns a validation error for an element the schema
// does not model at its position.
func UnknownElement(elementName string, opts ...Option) *Error {
	e := &Error{Tag: "unknown-element", Element: elementName}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// UnexpectedClose returns a structure error for a close event arriving
// with no open element, a contract violation by the event source.
func UnexpectedClose(opts ...Option) *Error {
	e := &Error{Tag: "unexpected-close"}
	for _, opt := range opts {
		opt(e)
	}
	// the event source broke document ordering; never a validation issue
	e.Kind = KindStructure
	return e
}

// MalformedDocument returns a parse error for input which could not be
// tokenized.
func MalformedDocument(opts ...Option) *Error {
	e := &Error{Tag: "malformed-document"}
	for _, opt := range opts {
		opt(e)
	}
	e.Kind = KindParse
	return e
}
