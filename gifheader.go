// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package segmeta

import (
	"encoding/binary"
	"errors"
)

var errInvalidGIFSignature = errors.New("invalid GIF file signature")

// GIF header and logical screen descriptor, little-endian:
//
//	"GIF" signature, 3 byte version ("87a" or "89a"),
//	uint16 width, uint16 height, packed flags,
//	background color index, pixel aspect ratio.
var gifHeaderFields = []field{
	func(r *BufferReader, d *Directory) error {
		sig, err := r.ReadString(3)
		if err != nil {
			return err
		}
		if sig != "GIF" {
			return errInvalidGIFSignature
		}
		return nil
	},
	stringField(TagGIFFormatVersion, 3),
	uintField16(TagGIFImageWidth),
	uintField16(TagGIFImageHeight),
	func(r *BufferReader, d *Directory) error {
		flags, err := r.ReadUint8()
		if err != nil {
			return err
		}
		d.SetBool(TagGIFHasGlobalColorTable, flags&0x80 != 0)
		d.SetInt(TagGIFBitsPerPixel, int((flags>>4)&0x07)+1)
		d.SetBool(TagGIFIsColorTableSorted, flags&0x08 != 0)
		d.SetInt(TagGIFColorTableSize, 2<<(flags&0x07))
		return nil
	},
	// Background color index.
	skipField(1),
	func(r *BufferReader, d *Directory) error {
		aspect, err := r.ReadUint8()
		if err != nil {
			return err
		}
		if aspect != 0 {
			ratio, err := NewRat[uint32](uint32(aspect)+15, 64)
			if err != nil {
				return err
			}
			d.SetRat(TagGIFPixelAspectRatio, ratio)
		}
		return nil
	},
}

// GIFHeaderReader decodes the GIF header and logical screen descriptor
// found at the start of a GIF file.
type GIFHeaderReader struct {
	data []byte
}

// NewGIFHeaderReader creates a new GIFHeaderReader for data.
func NewGIFHeaderReader(data []byte) (*GIFHeaderReader, error) {
	if data == nil {
		return nil, ErrInvalidInput
	}
	return &GIFHeaderReader{data: data}, nil
}

// Kind returns KindGIFHeader.
func (e *GIFHeaderReader) Kind() *DirectoryKind {
	return KindGIFHeader
}

// Extract decodes the segment into d.
func (e *GIFHeaderReader) Extract(d *Directory) {
	r, err := NewBufferReader(e.data, binary.LittleEndian)
	if err != nil {
		d.AddError(err.Error())
		return
	}
	decodeFields(r, d, gifHeaderFields)
}
