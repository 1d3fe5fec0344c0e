package errors

import (
	"fmt"
	"strings"
)

// ErrorType represents the category of error
type ErrorType string

const (
	ErrorTypeManifest   ErrorType = "Manifest"
	ErrorTypeStorage    ErrorType = "Storage"
	ErrorTypeFileSystem ErrorType = "FileSystem"
	ErrorTypeValidation ErrorType = "Validation"
)

// DriftError represents a user-friendly error with actionable guidance
type DriftError struct {
	Type      ErrorType
	Message   string
	Cause     string
	Solutions []string
	Help      string
}

// Error implements the error interface
func (e *DriftError) Error() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("\nError: %s\n", e.Message))

	if e.Cause != "" {
		sb.WriteString(fmt.Sprintf("Cause: %s\n", e.Cause))
	}

	if len(e.Solutions) > 0 {
		sb.WriteString("\nSolutions:\n")
		for _, solution := range e.Solutions {
			sb.WriteString(fmt.Sprintf("  %s\n", solution))
		}
	}

	if e.Help != "" {
		sb.WriteString(fmt.Sprintf("Help: %s\n", e.Help))
	}

	return sb.String()
}

// New creates a new DriftError
func New(errType ErrorType, message string) *DriftError {
	return &DriftError{
		Type:    errType,
		Message: message,
	}
}

// WithCause adds cause information
func (e *DriftError) WithCause(cause string) *DriftError {
	e.Cause = cause
	return e
}

// WithSolutions adds solution steps
func (e *DriftError) WithSolutions(solutions ...string) *DriftError {
	e.Solutions = append(e.Solutions, solutions...)
	return e
}

// WithHelp adds a help command reference
func (e *DriftError) WithHelp(help string) *DriftError {
	e.Help = help
	return e
}

// ManifestParseError signals that the project manifest exists but could not
// be parsed as structured data. Unlike absent files or malformed env lines,
// this is fatal for the whole collection.
type ManifestParseError struct {
	Path string
	Err  error
}

func (e *ManifestParseError) Error() string {
	return fmt.Sprintf("manifest %s is not valid JSON: %v", e.Path, e.Err)
}

func (e *ManifestParseError) Unwrap() error {
	return e.Err
}

// AbsentBaselineError signals that no baseline exists to compare against.
// The comparator never sees this; callers resolve it before comparing.
type AbsentBaselineError struct {
	Path string
}

func (e *AbsentBaselineError) Error() string {
	return fmt.Sprintf("no baseline found at %s", e.Path)
}
