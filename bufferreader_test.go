// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package segmeta

import (
	"encoding/binary"
	"errors"
	"testing"

	qt "github.com/frankban/quicktest"
	"golang.org/x/text/encoding/charmap"
)

func TestNewBufferReader(t *testing.T) {
	c := qt.New(t)

	_, err := NewBufferReader(nil, binary.BigEndian)
	c.Assert(err, qt.ErrorIs, ErrInvalidInput)

	r, err := NewBufferReader([]byte{}, nil)
	c.Assert(err, qt.IsNil)
	c.Assert(r.Len(), qt.Equals, 0)
	c.Assert(r.ByteOrder(), qt.Equals, binary.ByteOrder(binary.BigEndian))

	_, err = r.ReadUint8()
	c.Assert(IsBoundsError(err), qt.IsTrue)
}

func TestBufferReaderByteOrder(t *testing.T) {
	c := qt.New(t)

	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}

	c.Run("BigEndian", func(c *qt.C) {
		r, _ := NewBufferReader(data, binary.BigEndian)
		v16, err := r.ReadUint16()
		c.Assert(err, qt.IsNil)
		c.Assert(v16, qt.Equals, uint16(0x0102))
		v32, err := r.ReadUint32()
		c.Assert(err, qt.IsNil)
		c.Assert(v32, qt.Equals, uint32(0x03040506))
		c.Assert(r.Pos(), qt.Equals, 6)
		c.Assert(r.Remaining(), qt.Equals, 2)
	})

	c.Run("LittleEndian", func(c *qt.C) {
		r, _ := NewBufferReader(data, binary.LittleEndian)
		v16, err := r.ReadUint16()
		c.Assert(err, qt.IsNil)
		c.Assert(v16, qt.Equals, uint16(0x0201))
		v32, err := r.ReadUint32()
		c.Assert(err, qt.IsNil)
		c.Assert(v32, qt.Equals, uint32(0x06050403))
	})

	c.Run("64 bit", func(c *qt.C) {
		r, _ := NewBufferReader(data, binary.BigEndian)
		v, err := r.ReadUint64()
		c.Assert(err, qt.IsNil)
		c.Assert(v, qt.Equals, uint64(0x0102030405060708))
		c.Assert(r.Remaining(), qt.Equals, 0)
	})
}

func TestBufferReaderSigned(t *testing.T) {
	c := qt.New(t)

	r, _ := NewBufferReader([]byte{0xff, 0xff, 0xfe, 0xff, 0xff, 0xff, 0xfd, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xfc}, binary.BigEndian)

	i8, err := r.ReadInt8()
	c.Assert(err, qt.IsNil)
	c.Assert(i8, qt.Equals, int8(-1))
	i16, err := r.ReadInt16()
	c.Assert(err, qt.IsNil)
	c.Assert(i16, qt.Equals, int16(-2))
	i32, err := r.ReadInt32()
	c.Assert(err, qt.IsNil)
	c.Assert(i32, qt.Equals, int32(-3))
	i64, err := r.ReadInt64()
	c.Assert(err, qt.IsNil)
	c.Assert(i64, qt.Equals, int64(-4))
}

func TestBufferReaderBounds(t *testing.T) {
	c := qt.New(t)

	r, _ := NewBufferReader([]byte{0x00, 0x01, 0x02}, binary.BigEndian)

	_, err := r.ReadUint16()
	c.Assert(err, qt.IsNil)

	_, err = r.ReadUint32()
	c.Assert(err, qt.ErrorMatches, `attempted to read 4 bytes at offset 2 beyond end of segment \(length 3\)`)

	var be *BoundsError
	c.Assert(errors.As(err, &be), qt.IsTrue)
	c.Assert(*be, qt.Equals, BoundsError{Offset: 2, Width: 4, Length: 3})

	// The cursor does not move on failure.
	c.Assert(r.Pos(), qt.Equals, 2)
	v, err := r.ReadUint8()
	c.Assert(err, qt.IsNil)
	c.Assert(v, qt.Equals, uint8(0x02))

	_, err = r.ReadBytes(-1)
	c.Assert(IsBoundsError(err), qt.IsTrue)
	c.Assert(r.Skip(1), qt.Satisfies, IsBoundsError)
	c.Assert(r.Skip(0), qt.IsNil)
	c.Assert(IsBoundsError(errors.New("other")), qt.IsFalse)
}

func TestBufferReaderBytes(t *testing.T) {
	c := qt.New(t)

	data := []byte{1, 2, 3, 4}
	r, _ := NewBufferReader(data, binary.BigEndian)
	c.Assert(r.Skip(1), qt.IsNil)
	b, err := r.ReadBytes(2)
	c.Assert(err, qt.IsNil)
	c.Assert(b, qt.DeepEquals, []byte{2, 3})

	// The returned slice is a copy.
	b[0] = 42
	c.Assert(data[1], qt.Equals, byte(2))
}

func TestBufferReaderString(t *testing.T) {
	c := qt.New(t)

	c.Run("Latin-1", func(c *qt.C) {
		r, _ := NewBufferReader([]byte("89a\x00caf\xe9"), binary.BigEndian)
		s, err := r.ReadString(4)
		c.Assert(err, qt.IsNil)
		c.Assert(s, qt.Equals, "89a")
		s, err = r.ReadString(4)
		c.Assert(err, qt.IsNil)
		c.Assert(s, qt.Equals, "café")
	})

	c.Run("Encoded", func(c *qt.C) {
		r, _ := NewBufferReader([]byte{0x80, 0x41}, binary.BigEndian)
		s, err := r.ReadStringEncoded(2, charmap.Windows1252)
		c.Assert(err, qt.IsNil)
		c.Assert(s, qt.Equals, "€A")
	})

	c.Run("Raw", func(c *qt.C) {
		r, _ := NewBufferReader([]byte("abc"), binary.BigEndian)
		s, err := r.ReadStringEncoded(3, nil)
		c.Assert(err, qt.IsNil)
		c.Assert(s, qt.Equals, "abc")
	})

	c.Run("Short", func(c *qt.C) {
		r, _ := NewBufferReader([]byte("ab"), binary.BigEndian)
		_, err := r.ReadString(3)
		c.Assert(IsBoundsError(err), qt.IsTrue)
		c.Assert(r.Pos(), qt.Equals, 0)
	})
}
