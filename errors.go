package miniconf

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrSyntax matches every *SyntaxError.
	ErrSyntax = errors.New("syntax error")
	// ErrDuplicateKey matches a *SemanticError of kind DuplicateKey.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrInvalidValue matches a *SemanticError of kind InvalidValue.
	ErrInvalidValue = errors.New("invalid value")
)

// A SyntaxError reports the first position where the input does not match
// the grammar. Parsing stops there; nothing after it is examined.
type SyntaxError struct {
	Filename string
	Line     int
	Column   int
	// Unexpected is the offending token text, or "end of input". It is
	// empty when no token could be formed at all, e.g. a stray '@'.
	Unexpected string
	// Expected describes what the grammar wanted, when known.
	Expected string
	Message  string
}

func (e *SyntaxError) Error() string {
	if e.Filename != "" {
		return fmt.Sprintf("miniconf: %s:%d:%d: syntax error: %s", e.Filename, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("miniconf: syntax error at line %d, column %d: %s", e.Line, e.Column, e.Message)
}

func (e *SyntaxError) Is(target error) bool { return target == ErrSyntax }

// ErrorKind classifies a SemanticError.
type ErrorKind int

const (
	// DuplicateKey: a key declared twice in the same section or object.
	DuplicateKey ErrorKind = iota + 1
	// InvalidValue: a literal that matched the grammar but failed conversion.
	InvalidValue
)

func (k ErrorKind) String() string {
	switch k {
	case DuplicateKey:
		return "duplicate key"
	case InvalidValue:
		return "invalid value"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// A SemanticError is a rule violation found after the grammar matched.
type SemanticError struct {
	Kind ErrorKind
	// Line is the 1-based line of the offending token. For DuplicateKey it
	// is the line of the second declaration.
	Line    int
	Section string
	Key     string
	Message string
}

func (e *SemanticError) Error() string {
	return fmt.Sprintf("miniconf: %s on line %d: %s", e.Kind, e.Line, e.Message)
}

func (e *SemanticError) Is(target error) bool {
	switch e.Kind {
	case DuplicateKey:
		return target == ErrDuplicateKey
	case InvalidValue:
		return target == ErrInvalidValue
	}
	return false
}

func duplicateKeyError(line int, section, key string) *SemanticError {
	return &SemanticError{
		Kind:    DuplicateKey,
		Line:    line,
		Section: section,
		Key:     key,
		Message: fmt.Sprintf("key %q already defined in [%s]", key, section),
	}
}

// A MarshalerError represents an error from calling a MarshalMiniConf method.
type MarshalerError struct {
	Type reflect.Type
	Err  error
}

func (e *MarshalerError) Error() string {
	return "miniconf: error calling MarshalMiniConf for type " + e.Type.String() + ": " + e.Err.Error()
}

func (e *MarshalerError) Unwrap() error { return e.Err }
