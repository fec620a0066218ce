// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package segmeta

import "encoding/binary"

// JFIF APP0 payload layout, big-endian:
//
//	offset  0, 4 bytes: format version
//	offset  4, 2 bytes: units
//	offset  6, 4 bytes: X resolution
//	offset 10, 4 bytes: Y resolution
//
// Published JFIF documents version and resolutions as 2-byte fields.
// The 4-byte widths are kept until verified against real files.
var jfifFields = []field{
	intField32(TagJFIFVersion),
	uintField16(TagJFIFUnits),
	intField32(TagJFIFResX),
	intField32(TagJFIFResY),
}

// JFIFReader decodes the JFIF data found in the JPEG APP0 segment.
type JFIFReader struct {
	data []byte
}

// NewJFIFReader creates a new JFIFReader for data.
func NewJFIFReader(data []byte) (*JFIFReader, error) {
	if data == nil {
		return nil, ErrInvalidInput
	}
	return &JFIFReader{data: data}, nil
}

// Kind returns KindJFIF.
func (e *JFIFReader) Kind() *DirectoryKind {
	return KindJFIF
}

// Extract decodes the segment into d.
func (e *JFIFReader) Extract(d *Directory) {
	r, err := NewBufferReader(e.data, binary.BigEndian)
	if err != nil {
		d.AddError(err.Error())
		return
	}
	decodeFields(r, d, jfifFields)
}
