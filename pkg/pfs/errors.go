// Package pfs provides the process-filesystem protocol helpers shared
// by the server: error-to-status mapping, request logging, and the
// attribute conversions between the filesystem and the wire.
package pfs

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/example/procfs/pkg/api"
	"github.com/example/procfs/pkg/fs"
)

// MapErrorToStatus converts a Go error to a protocol status code
func MapErrorToStatus(err error) api.Status {
	if err == nil {
		return api.Status_OK
	}

	// Map filesystem errors to protocol status codes
	if errors.Is(err, fs.ErrNotExist) {
		return api.Status_ERR_NOENT
	} else if errors.Is(err, fs.ErrPermission) {
		return api.Status_ERR_ACCES
	} else if errors.Is(err, fs.ErrIsDir) {
		return api.Status_ERR_ISDIR
	} else if errors.Is(err, fs.ErrNotDir) {
		return api.Status_ERR_NOTDIR
	} else if errors.Is(err, fs.ErrInvalid) {
		return api.Status_ERR_INVAL
	} else if errors.Is(err, fs.ErrInvalidHandle) {
		return api.Status_ERR_BADHANDLE
	} else if errors.Is(err, fs.ErrReadOnly) {
		return api.Status_ERR_ROFS
	} else if errors.Is(err, fs.ErrBadCookie) {
		return api.Status_ERR_BAD_COOKIE
	} else if errors.Is(err, fs.ErrStale) {
		return api.Status_ERR_STALE
	} else if errors.Is(err, fs.ErrNotSupported) {
		return api.Status_ERR_NOTSUPP
	}

	// Map standard Go errors
	if errors.Is(err, os.ErrPermission) {
		return api.Status_ERR_PERM
	} else if errors.Is(err, os.ErrNotExist) {
		return api.Status_ERR_NOENT
	}

	// Default for unrecognized errors
	LogUnknownError(err)
	return api.Status_ERR_IO
}

// LogUnknownError logs detailed information about unrecognized errors
func LogUnknownError(err error) {
	log.Printf("Unknown error type: %T, message: %v", err, err)
}

// LogRequest logs information about a received request
func LogRequest(op string, reqID string, clientAddr string) {
	log.Printf("PFS request: %s, ID: %s, Client: %s", op, reqID, clientAddr)
}

// LogResponse logs information about a response
func LogResponse(op string, reqID string, status api.Status, duration string) {
	log.Printf("PFS response: %s, ID: %s, Status: %s, Duration: %s",
		op, reqID, status.String(), duration)
}

// LogError logs an error with its context
func LogError(op string, reqID string, err error) {
	log.Printf("PFS error: %s, ID: %s, Error: %v", op, reqID, err)
}

// PFSError represents an error with a protocol status code
type PFSError struct {
	Status  api.Status // Protocol status code
	Message string     // Error description
	Cause   error      // Underlying error
}

// Error implements the error interface
func (e *PFSError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (underlying: %v)", e.Status.String(), e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Status.String(), e.Message)
}

// Unwrap returns the underlying error
func (e *PFSError) Unwrap() error {
	return e.Cause
}

// NewPFSError creates a new PFSError
func NewPFSError(status api.Status, message string, cause error) *PFSError {
	return &PFSError{
		Status:  status,
		Message: message,
		Cause:   cause,
	}
}
