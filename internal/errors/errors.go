// Package errors defines the stable error codes returned by devkit's outer
// surfaces: catalog loading, configuration and the CLI.
//
// The recommendation core never returns errors; these codes exist for the
// code paths that read data or user input.
package errors

import (
	"fmt"
)

// ErrorCode represents stable error codes for all failure modes
type ErrorCode string

const (
	// ToolNotFound indicates a slug that does not resolve in the directory
	ToolNotFound ErrorCode = "TOOL_NOT_FOUND"
	// CatalogInvalid indicates directory or journey data that failed to load or validate
	CatalogInvalid ErrorCode = "CATALOG_INVALID"
	// ConfigInvalid indicates a configuration file or value that failed validation
	ConfigInvalid ErrorCode = "CONFIG_INVALID"
	// InvalidArgument indicates a bad flag or argument value
	InvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// ExportFailed indicates the site export could not be written
	ExportFailed ErrorCode = "EXPORT_FAILED"
	// InternalError indicates unexpected error
	InternalError ErrorCode = "INTERNAL_ERROR"
)

// FixActionType represents the type of fix action
type FixActionType string

const (
	// RunCommand suggests running a command
	RunCommand FixActionType = "run-command"
	// EditFile suggests editing a data or config file
	EditFile FixActionType = "edit-file"
)

// FixAction represents a suggested fix for an error
type FixAction struct {
	Type        FixActionType `json:"type"`
	Command     string        `json:"command,omitempty"`
	Path        string        `json:"path,omitempty"`
	Safe        bool          `json:"safe,omitempty"`
	Description string        `json:"description,omitempty"`
}

// DevkitError represents a devkit error with code, message, and suggestions
type DevkitError struct {
	Code           ErrorCode   `json:"code"`
	Message        string      `json:"message"`
	Details        interface{} `json:"details,omitempty"`
	SuggestedFixes []FixAction `json:"suggestedFixes,omitempty"`
	cause          error       // Underlying error (not exported to JSON)
}

// New creates a DevkitError with the default suggested fixes for code.
func New(code ErrorCode, message string, cause error) *DevkitError {
	return NewDevkitError(code, message, cause, GetSuggestedFixes(code))
}

// NewDevkitError creates a new DevkitError
func NewDevkitError(code ErrorCode, message string, cause error, suggestedFixes []FixAction) *DevkitError {
	return &DevkitError{
		Code:           code,
		Message:        message,
		cause:          cause,
		SuggestedFixes: suggestedFixes,
	}
}

// Error implements the error interface
func (e *DevkitError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *DevkitError) Unwrap() error {
	return e.cause
}

// WithDetails adds details to the error
func (e *DevkitError) WithDetails(details interface{}) *DevkitError {
	e.Details = details
	return e
}

// Is reports whether target is a DevkitError with the same code.
func (e *DevkitError) Is(target error) bool {
	t, ok := target.(*DevkitError)
	return ok && t.Code == e.Code
}

// CodeOf returns the code of the first DevkitError in err's chain, or
// InternalError if there is none.
func CodeOf(err error) ErrorCode {
	for err != nil {
		if de, ok := err.(*DevkitError); ok {
			return de.Code
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	return InternalError
}

// ErrorActions maps error codes to suggested fix actions
var ErrorActions = map[ErrorCode][]FixAction{
	ToolNotFound: {
		{
			Type:        RunCommand,
			Command:     "devkit tools",
			Safe:        true,
			Description: "List every known tool slug",
		},
	},
	CatalogInvalid: {
		{
			Type:        RunCommand,
			Command:     "devkit validate",
			Safe:        true,
			Description: "Report integrity issues in the directory and journey data",
		},
	},
	ConfigInvalid: {
		{
			Type:        EditFile,
			Path:        ".devkit/config.json",
			Description: "Fix the reported configuration field",
		},
	},
}

// GetSuggestedFixes returns suggested fixes for an error code
func GetSuggestedFixes(code ErrorCode) []FixAction {
	if fixes, ok := ErrorActions[code]; ok {
		return fixes
	}
	return nil
}
