package registry

import (
	"errors"
	"fmt"
)

// Sentinel errors wrapped by [SkipError]. Callers match them with errors.Is.
var (
	ErrNonASCII    = errors.New("not 7-bit ASCII")
	ErrDuplicateID = errors.New("symbol id already registered in this directory")
	ErrEmptyName   = errors.New("empty symbol name")
)

// Width limits of the consuming application's fixed-size fields. Exceeding
// them is reported, not rejected.
var (
	ErrIDTooLong   = errors.New("symbol id exceeds field width")
	ErrPathTooLong = errors.New("image path exceeds field width")
)

// SkipReason is a short machine-readable tag for why a file was rejected.
type SkipReason string

const (
	ReasonNonASCIIName   SkipReason = "non-ascii-name"
	ReasonNonASCIIPath   SkipReason = "non-ascii-path"
	ReasonDuplicateID    SkipReason = "duplicate-id"
	ReasonEmptyName      SkipReason = "empty-name"
	ReasonUnresolvedPath SkipReason = "unresolved-path"
)

// SkipError describes a rejected file.
type SkipError struct {
	Filename string
	Reason   SkipReason
	Err      error
}

func (e *SkipError) Error() string {
	return fmt.Sprintf("%s: %s (%v)", e.Filename, e.Reason, e.Err)
}

func (e *SkipError) Unwrap() error { return e.Err }
