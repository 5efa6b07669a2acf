// Package rendering assembles LaTeX resume documents from a Profile.
package rendering

import "fmt"

// TemplateError represents an error parsing or executing the resume template
type TemplateError struct {
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("template error: %s", e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// RenderError represents a failure to build the document from a Profile.
// Field names the offending profile key when the failure is tied to one.
type RenderError struct {
	Field   string
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	msg := e.Message
	if e.Field != "" {
		msg = fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", msg, e.Cause)
	}
	return fmt.Sprintf("render error: %s", msg)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
