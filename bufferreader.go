// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package segmeta

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// BufferReader is a bounds-checked cursor over an immutable byte slice.
//
// Every read checks that [Pos(), Pos()+width) lies within the slice.
// If it does not, a *BoundsError is returned and the cursor is left unchanged.
// Note that this is not thread safe.
type BufferReader struct {
	b         []byte
	pos       int
	byteOrder binary.ByteOrder
}

// NewBufferReader creates a new BufferReader reading multi-byte values in the given byte order.
// A nil byteOrder means big-endian.
// A nil b returns ErrInvalidInput; an empty, non-nil b is valid and fails on the first read.
func NewBufferReader(b []byte, byteOrder binary.ByteOrder) (*BufferReader, error) {
	if b == nil {
		return nil, ErrInvalidInput
	}
	if byteOrder == nil {
		byteOrder = binary.BigEndian
	}
	return &BufferReader{b: b, byteOrder: byteOrder}, nil
}

// Pos returns the cursor position.
func (r *BufferReader) Pos() int {
	return r.pos
}

// Len returns the length of the underlying slice.
func (r *BufferReader) Len() int {
	return len(r.b)
}

// Remaining returns the number of unread bytes.
func (r *BufferReader) Remaining() int {
	return len(r.b) - r.pos
}

// ByteOrder returns the byte order used for multi-byte values.
func (r *BufferReader) ByteOrder() binary.ByteOrder {
	return r.byteOrder
}

// next returns the next n bytes and advances the cursor.
// The returned slice aliases the underlying data.
func (r *BufferReader) next(n int) ([]byte, error) {
	if n < 0 || n > len(r.b)-r.pos {
		return nil, &BoundsError{Offset: r.pos, Width: n, Length: len(r.b)}
	}
	b := r.b[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// Skip advances the cursor by n bytes.
func (r *BufferReader) Skip(n int) error {
	_, err := r.next(n)
	return err
}

// ReadUint8 reads one unsigned byte.
func (r *BufferReader) ReadUint8() (uint8, error) {
	b, err := r.next(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadInt8 reads one signed byte.
func (r *BufferReader) ReadInt8() (int8, error) {
	v, err := r.ReadUint8()
	return int8(v), err
}

// ReadUint16 reads an unsigned 16-bit value.
func (r *BufferReader) ReadUint16() (uint16, error) {
	const n = 2
	b, err := r.next(n)
	if err != nil {
		return 0, err
	}
	return r.byteOrder.Uint16(b), nil
}

// ReadInt16 reads a signed 16-bit value.
func (r *BufferReader) ReadInt16() (int16, error) {
	v, err := r.ReadUint16()
	return int16(v), err
}

// ReadUint32 reads an unsigned 32-bit value.
func (r *BufferReader) ReadUint32() (uint32, error) {
	const n = 4
	b, err := r.next(n)
	if err != nil {
		return 0, err
	}
	return r.byteOrder.Uint32(b), nil
}

// ReadInt32 reads a signed 32-bit value.
func (r *BufferReader) ReadInt32() (int32, error) {
	v, err := r.ReadUint32()
	return int32(v), err
}

// ReadUint64 reads an unsigned 64-bit value.
func (r *BufferReader) ReadUint64() (uint64, error) {
	const n = 8
	b, err := r.next(n)
	if err != nil {
		return 0, err
	}
	return r.byteOrder.Uint64(b), nil
}

// ReadInt64 reads a signed 64-bit value.
func (r *BufferReader) ReadInt64() (int64, error) {
	v, err := r.ReadUint64()
	return int64(v), err
}

// ReadBytes reads n bytes into a new slice.
func (r *BufferReader) ReadBytes(n int) ([]byte, error) {
	b, err := r.next(n)
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), b...), nil
}

// ReadString reads a fixed-width ISO-8859-1 string of n bytes.
// Trailing NUL padding is removed.
func (r *BufferReader) ReadString(n int) (string, error) {
	return r.ReadStringEncoded(n, charmap.ISO8859_1)
}

// ReadStringEncoded reads a fixed-width string of n bytes in the given encoding.
// Trailing NUL padding is removed. A nil enc means the bytes are used as is.
func (r *BufferReader) ReadStringEncoded(n int, enc encoding.Encoding) (string, error) {
	pos := r.pos
	b, err := r.next(n)
	if err != nil {
		return "", err
	}
	b = trimTrailingNulls(b)
	if enc == nil {
		return string(b), nil
	}
	s, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		r.pos = pos
		return "", fmt.Errorf("failed to decode string at offset %d: %w", pos, err)
	}
	return string(s), nil
}
