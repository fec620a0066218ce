// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package segmeta

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/rwcarlsen/goexif/tiff"
)

const (
	exifHeader            = 0x45786966 // "Exif"
	byteOrderBigEndian    = 0x4d4d
	byteOrderLittleEndian = 0x4949
	tiffMarker            = 42
	tiffHeaderLen         = 8

	// Larger counts are treated as corrupt.
	maxExifValueCount = 0x10000
)

var exifTypeSize = map[tiff.DataType]uint32{
	tiff.DTByte:      1,
	tiff.DTAscii:     1,
	tiff.DTShort:     2,
	tiff.DTLong:      4,
	tiff.DTRational:  8,
	tiff.DTSByte:     1,
	tiff.DTUndefined: 1,
	tiff.DTSShort:    2,
	tiff.DTSLong:     4,
	tiff.DTSRational: 8,
	tiff.DTFloat:     4,
	tiff.DTDouble:    8,
}

// ExifReader decodes IFD0 of the Exif data found in the JPEG APP1 segment.
// The segment must start with the "Exif\x00\x00" preamble.
type ExifReader struct {
	data []byte
}

// NewExifReader creates a new ExifReader for data.
func NewExifReader(data []byte) (*ExifReader, error) {
	if data == nil {
		return nil, ErrInvalidInput
	}
	return &ExifReader{data: data}, nil
}

// Kind returns KindExifIFD0.
func (e *ExifReader) Kind() *DirectoryKind {
	return KindExifIFD0
}

// Extract decodes the segment into d.
func (e *ExifReader) Extract(d *Directory) {
	r, err := NewBufferReader(e.data, binary.BigEndian)
	if err != nil {
		d.AddError(err.Error())
		return
	}

	if !decodeFields(r, d, []field{
		func(r *BufferReader, d *Directory) error {
			header, err := r.ReadUint32()
			if err != nil {
				return err
			}
			if header != exifHeader {
				return fmt.Errorf("invalid Exif header 0x%08x", header)
			}
			// Two bytes of padding.
			return r.Skip(2)
		},
	}) {
		return
	}

	// Offsets inside the TIFF structure are relative to its first byte.
	tiffData := e.data[r.Pos():]
	byteOrder, ifd0Offset, err := readTIFFHeader(tiffData)
	if err != nil {
		d.AddError(err.Error())
		return
	}

	r, _ = NewBufferReader(tiffData, byteOrder)
	if err := r.Skip(int(ifd0Offset)); err != nil {
		d.AddError(err.Error())
		return
	}
	numTags, err := r.ReadUint16()
	if err != nil {
		d.AddError(err.Error())
		return
	}

	for range numTags {
		tag, err := decodeExifTag(r)
		if err == nil {
			err = setExifTag(d, tag)
		}
		if err != nil {
			d.AddError(err.Error())
			return
		}
	}
}

// A tag is represented in 12 bytes:
//   - 2 bytes for the tag ID
//   - 2 bytes for the data type
//   - 4 bytes for the number of data values of the specified type
//   - 4 bytes for the value itself, if it fits, otherwise for an offset to it.
//
// The entry is validated against the TIFF data in r before it is handed to
// tiff.DecodeTag, which trusts the count when it allocates.
func decodeExifTag(r *BufferReader) (*tiff.Tag, error) {
	start := r.Pos()

	id, err := r.ReadUint16()
	if err != nil {
		return nil, err
	}
	dataType, err := r.ReadUint16()
	if err != nil {
		return nil, err
	}
	count, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}
	valueOffset, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}

	size, ok := exifTypeSize[tiff.DataType(dataType)]
	if !ok {
		return nil, fmt.Errorf("tag 0x%04x: unknown Exif data type %d", id, dataType)
	}
	if count == 0 || count > maxExifValueCount {
		return nil, fmt.Errorf("tag 0x%04x: invalid value count %d", id, count)
	}
	valLen := int64(size) * int64(count)
	if valLen > 4 && int64(valueOffset)+valLen > int64(r.Len()) {
		return nil, fmt.Errorf("tag 0x%04x: %d byte value at offset %d beyond end of segment (TIFF length %d)", id, valLen, valueOffset, r.Len())
	}

	sr := bytes.NewReader(r.b)
	if _, err := sr.Seek(int64(start), io.SeekStart); err != nil {
		return nil, err
	}
	return tiff.DecodeTag(sr, r.ByteOrder())
}

// readTIFFHeader validates the 8 byte TIFF header and returns its byte order and the offset of IFD0.
func readTIFFHeader(b []byte) (binary.ByteOrder, uint32, error) {
	r, err := NewBufferReader(b, binary.BigEndian)
	if err != nil {
		return nil, 0, err
	}
	order, err := r.ReadUint16()
	if err != nil {
		return nil, 0, err
	}

	var byteOrder binary.ByteOrder
	switch order {
	case byteOrderBigEndian:
		byteOrder = binary.BigEndian
	case byteOrderLittleEndian:
		byteOrder = binary.LittleEndian
	default:
		return nil, 0, fmt.Errorf("invalid TIFF byte order 0x%04x", order)
	}

	// The rest of the header uses the byte order just read.
	r, _ = NewBufferReader(b[r.Pos():], byteOrder)
	marker, err := r.ReadUint16()
	if err != nil {
		return nil, 0, err
	}
	if marker != tiffMarker {
		return nil, 0, fmt.Errorf("invalid TIFF marker %d", marker)
	}
	offset, err := r.ReadUint32()
	if err != nil {
		return nil, 0, err
	}
	if offset < tiffHeaderLen || int64(offset) >= int64(len(b)) {
		return nil, 0, fmt.Errorf("IFD0 offset %d out of range (TIFF length %d)", offset, len(b))
	}
	return byteOrder, offset, nil
}

func setExifTag(d *Directory, tag *tiff.Tag) error {
	id := TagID(tag.Id)
	count := int(tag.Count)

	switch tag.Format() {
	case tiff.IntVal:
		if count == 1 {
			v, err := tag.Int(0)
			if err != nil {
				return err
			}
			d.SetInt(id, v)
			return nil
		}
		if tag.Type == tiff.DTByte {
			d.SetBytes(id, tag.Val)
			return nil
		}
		vals := make([]int, count)
		for i := range vals {
			v, err := tag.Int(i)
			if err != nil {
				return err
			}
			vals[i] = v
		}
		d.SetInts(id, vals)
	case tiff.RatVal:
		// Multi-valued rationals (e.g. white point) keep the first value.
		num, den, err := tag.Rat2(0)
		if err != nil {
			return err
		}
		if tag.Type == tiff.DTSRational {
			d.SetRat(id, newRatRaw(int32(num), int32(den)))
		} else {
			d.SetRat(id, newRatRaw(uint32(num), uint32(den)))
		}
	case tiff.StringVal:
		s, err := tag.StringVal()
		if err != nil {
			return err
		}
		d.SetString(id, printableString(s))
	default:
		d.SetBytes(id, tag.Val)
	}

	return nil
}
