package dataset

import "fmt"

// NotFoundError reports an input file that does not exist.
type NotFoundError struct {
	Path  string
	Cause error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("file not found: %s", e.Path)
}

func (e *NotFoundError) Unwrap() error {
	return e.Cause
}

// ParseError reports an input file whose content is not valid JSON.
type ParseError struct {
	Path  string
	Cause error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error in %s: %v", e.Path, e.Cause)
	}
	return fmt.Sprintf("parse error in %s", e.Path)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// SchemaError reports valid JSON whose top-level shape is not the expected one.
type SchemaError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("schema error in %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("schema error in %s: %s", e.Path, e.Message)
}

func (e *SchemaError) Unwrap() error {
	return e.Cause
}

// LoadError represents any other failure reading an input file
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
