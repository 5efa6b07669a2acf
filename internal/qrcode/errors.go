// Package qrcode renders URLs as two-colour PNG QR codes.
package qrcode

import "fmt"

// EncodeError represents a failure to encode content as a QR symbol
type EncodeError struct {
	Message string
	Cause   error
}

func (e *EncodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("qr encode error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("qr encode error: %s", e.Message)
}

func (e *EncodeError) Unwrap() error {
	return e.Cause
}

// WriteError represents a failure to write the image file
type WriteError struct {
	Path  string
	Cause error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("qr write error: %s: %v", e.Path, e.Cause)
}

func (e *WriteError) Unwrap() error {
	return e.Cause
}
