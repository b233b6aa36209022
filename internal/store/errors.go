package store

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

// ErrEmptyGame is returned by AddScore when the game label is empty after
// trimming. Nothing is written.
var ErrEmptyGame = errors.New("store: game must not be empty")

var errNotOpen = errors.New("store is not open")

// Error is returned by every Store operation that fails against the
// database file or the export destination.
//
// Callers classify failures with the Is* helpers rather than by message:
//   - IsInitError: file unreachable, unwritable, corrupt or incompatible
//   - IsWriteError: an append or purge could not be committed
//   - IsReadError: a query could not be executed
//   - IsExportError: the export destination could not be written
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Op is a short description of the failed operation.
	Op string

	// Path is the database file (or export destination for export errors).
	Path string

	// Err is the underlying cause.
	Err error
}

// ErrorCode categorizes store errors.
type ErrorCode string

const (
	// ErrCodeInit indicates the store could not be opened or initialized.
	ErrCodeInit ErrorCode = "STORAGE_INIT"

	// ErrCodeWrite indicates a write was not durably committed.
	ErrCodeWrite ErrorCode = "STORAGE_WRITE"

	// ErrCodeRead indicates a query could not be executed.
	ErrCodeRead ErrorCode = "STORAGE_READ"

	// ErrCodeExport indicates an export file could not be created or written.
	ErrCodeExport ErrorCode = "STORAGE_EXPORT"
)

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s (path=%s): %v", e.Code, e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Op, e.Err)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// IsInitError returns true if the error is a STORAGE_INIT error.
// Uses errors.As to handle wrapped errors.
func IsInitError(err error) bool {
	return hasCode(err, ErrCodeInit)
}

// IsWriteError returns true if the error is a STORAGE_WRITE error.
func IsWriteError(err error) bool {
	return hasCode(err, ErrCodeWrite)
}

// IsReadError returns true if the error is a STORAGE_READ error.
func IsReadError(err error) bool {
	return hasCode(err, ErrCodeRead)
}

// IsExportError returns true if the error is a STORAGE_EXPORT error.
func IsExportError(err error) bool {
	return hasCode(err, ErrCodeExport)
}

// IsBusy reports whether err was caused by SQLite lock contention that
// outlasted the busy timeout.
func IsBusy(err error) bool {
	var se sqlite3.Error
	if errors.As(err, &se) {
		return se.Code == sqlite3.ErrBusy || se.Code == sqlite3.ErrLocked
	}
	return false
}

func hasCode(err error, code ErrorCode) bool {
	var se *Error
	if errors.As(err, &se) {
		return se.Code == code
	}
	return false
}
