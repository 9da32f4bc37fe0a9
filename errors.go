package blockgen

import (
	"errors"
	"strings"
)

var (
	// ErrInputUnavailable indicates the block list could not be read.
	ErrInputUnavailable = errors.New("block list unavailable")

	// ErrMissingTexture indicates at least one block texture does not exist.
	ErrMissingTexture = errors.New("missing texture resource")

	// ErrOutputWrite indicates the generated header could not be written.
	ErrOutputWrite = errors.New("output write failure")
)

// MissingTextureError lists every missing texture path found when
// GenerateOptions.CollectMissing is set.
type MissingTextureError struct {
	Paths []string // Missing texture paths in check order
}

// Error implements the error interface.
func (e *MissingTextureError) Error() string {
	return ErrMissingTexture.Error() + ": " + strings.Join(e.Paths, ", ")
}

// Unwrap lets errors.Is match ErrMissingTexture.
func (e *MissingTextureError) Unwrap() error {
	return ErrMissingTexture
}
