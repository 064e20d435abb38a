// SPDX-License-Identifier: MIT
// Package: incrun/sequence
//
// errors.go - sentinel errors for the sequence package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Context (which generator, which argument) is attached with %w.

package sequence

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates a negative length, or a non-positive period/width.
// Usage: if errors.Is(err, ErrBadSize) { /* fix n/period/width */ }.
var ErrBadSize = errors.New("sequence: invalid size/length")

// ErrUnknownShape indicates that ByName received a shape it does not know.
var ErrUnknownShape = errors.New("sequence: unknown shape")

// sizeErrorf wraps ErrBadSize with the generator name and offending argument.
func sizeErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), ErrBadSize)
}
