// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package segmeta

import (
	"encoding"
	"fmt"
	"math"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestStringer(t *testing.T) {
	c := qt.New(t)

	var formatAuto Format
	var format42 Format = 42
	c.Assert(JFIF.String(), qt.Equals, "JFIF")
	c.Assert(GIFHeader.String(), qt.Equals, "GIFHeader")
	c.Assert(Exif.String(), qt.Equals, "Exif")
	c.Assert(formatAuto.String(), qt.Equals, "FormatAuto")
	c.Assert(format42.String(), qt.Equals, "Format(42)")
}

func BenchmarkPrintableString(b *testing.B) {
	runBench := func(b *testing.B, name, s string) {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = printableString(s)
			}
		})
	}

	runBench(b, "ASCII", "Hello, World!")
	runBench(b, "ASCII with whitespace", "   Hello, World!   ")
	runBench(b, "UTF-8", "Hello, 世界!")
	runBench(b, "Unprintable", "Hello, \x00World!")
}

func TestRat(t *testing.T) {
	c := qt.New(t)

	c.Run("NewRat", func(c *qt.C) {
		ru, err := NewRat[uint32](1, 2)
		c.Assert(err, qt.IsNil)
		c.Assert(ru.Num(), qt.Equals, uint32(1))
		c.Assert(ru.Den(), qt.Equals, uint32(2))

		ri, err := NewRat[int32](1, 2)
		c.Assert(err, qt.IsNil)
		c.Assert(ri.Num(), qt.Equals, int32(1))
		c.Assert(ri.Den(), qt.Equals, int32(2))

		_, err = NewRat[int32](10, 0)
		c.Assert(err, qt.ErrorMatches, "denominator must be non-zero")

		// Denominator must be positive.
		ri, err = NewRat[int32](13, -3)
		c.Assert(err, qt.IsNil)
		c.Assert(ri.Num(), qt.Equals, int32(-13))
		c.Assert(ri.Den(), qt.Equals, int32(3))
		// Remove the greatest common divisor.
		ri, err = NewRat[int32](6, 9)
		c.Assert(err, qt.IsNil)
		c.Assert(ri.Num(), qt.Equals, int32(2))
		c.Assert(ri.Den(), qt.Equals, int32(3))
		ri, err = NewRat[int32](90, 600)
		c.Assert(err, qt.IsNil)
		c.Assert(ri.Num(), qt.Equals, int32(3))
		c.Assert(ri.Den(), qt.Equals, int32(20))
	})

	c.Run("Raw", func(c *qt.C) {
		r := newRatRaw[uint32](72, 0)
		c.Assert(r.Den(), qt.Equals, uint32(0))
		c.Assert(math.IsInf(r.Float64(), 1), qt.IsTrue)
		c.Assert(r.String(), qt.Equals, "72/0")
	})

	c.Run("MarshalText", func(c *qt.C) {
		ru, _ := NewRat[uint32](1, 2)
		text, err := ru.(encoding.TextMarshaler).MarshalText()
		c.Assert(err, qt.IsNil)
		c.Assert(string(text), qt.Equals, "1/2")
	})

	c.Run("UnmarshalText", func(c *qt.C) {
		ru, _ := NewRat[uint32](1, 2)
		err := ru.(encoding.TextUnmarshaler).UnmarshalText([]byte("3/4"))
		c.Assert(err, qt.IsNil)
		c.Assert(ru.Num(), qt.Equals, uint32(3))
		c.Assert(ru.Den(), qt.Equals, uint32(4))

		err = ru.(encoding.TextUnmarshaler).UnmarshalText([]byte("4"))
		c.Assert(err, qt.IsNil)
		c.Assert(ru.Num(), qt.Equals, uint32(4))
		c.Assert(ru.Den(), qt.Equals, uint32(1))
	})

	c.Run("Format", func(c *qt.C) {
		ru, _ := NewRat[uint32](1, 4)
		c.Assert(fmt.Sprintf("%.2f", ru), qt.Equals, "0.25")
		c.Assert(fmt.Sprintf("%s", ru), qt.Equals, "1/4")
		c.Assert(fmt.Sprintf("%v", ru), qt.Equals, "1/4")
	})
}

func TestTrimTrailingNulls(t *testing.T) {
	c := qt.New(t)

	c.Assert(string(trimTrailingNulls([]byte("89a\x00\x00"))), qt.Equals, "89a")
	c.Assert(string(trimTrailingNulls([]byte("\x00a"))), qt.Equals, "\x00a")
	c.Assert(len(trimTrailingNulls([]byte{0, 0})), qt.Equals, 0)
}
