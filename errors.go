// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package segmeta

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when a reader is constructed without a backing byte slice.
	ErrInvalidInput = errors.New("segmeta: no segment data provided")

	// ErrTagNotFound is returned by the Directory getters when the tag has not been decoded.
	ErrTagNotFound = errors.New("segmeta: tag not found")

	// ErrTagType is matched by a *TagTypeError.
	ErrTagType = errors.New("segmeta: wrong tag value type")

	errUnsupportedFormat = errors.New("segmeta: unsupported format")
)

// BoundsError is returned when a read would go past the end of the segment.
type BoundsError struct {
	// Offset is the cursor position of the attempted read.
	Offset int
	// Width is the number of bytes requested.
	Width int
	// Length is the length of the underlying byte slice.
	Length int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("attempted to read %d bytes at offset %d beyond end of segment (length %d)", e.Width, e.Offset, e.Length)
}

// IsBoundsError reports whether err is or wraps a *BoundsError.
func IsBoundsError(err error) bool {
	var e *BoundsError
	return errors.As(err, &e)
}

// TagTypeError is returned by the Directory getters when the tag holds a value
// of another type than the one requested.
type TagTypeError struct {
	Tag       TagID
	Name      string
	Requested string
	Actual    any
}

func (e *TagTypeError) Error() string {
	return fmt.Sprintf("tag %q (0x%04x) holds %T, not %s", e.Name, uint16(e.Tag), e.Actual, e.Requested)
}

// Is reports whether target is ErrTagType.
func (e *TagTypeError) Is(target error) bool {
	return target == ErrTagType
}
