// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

// Package segmeta decodes fixed-layout binary metadata segments from image
// files (JFIF, GIF header, Exif IFD0) into typed tag directories.
//
// Truncated or malformed segments never fail the decode: whatever was decoded
// before the first problem is kept and the problem is recorded on the Directory.
package segmeta

import (
	"bytes"
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

const (
	// FormatAuto detects the format from the segment's signature.
	// The JFIF payload has no signature and must be given explicitly.
	FormatAuto Format = iota
	// JFIF is the JFIF payload of the JPEG APP0 segment.
	JFIF
	// GIFHeader is the GIF header and logical screen descriptor.
	GIFHeader
	// Exif is the Exif payload of the JPEG APP1 segment.
	Exif
)

// Format is the segment format.
//
//go:generate stringer -type=Format
type Format int

// Options contains the options for the Decode function.
type Options struct {
	// The segment format.
	Format Format

	// The segment bytes, already located and sliced out of the image file.
	Segment []byte

	// Warnf will be called for each error recorded on the Directory.
	Warnf func(string, ...any)
}

// NewSegmentReader creates the SegmentReader for the given format.
func NewSegmentReader(format Format, data []byte) (SegmentReader, error) {
	if data == nil {
		return nil, ErrInvalidInput
	}
	if format == FormatAuto {
		format = detectFormat(data)
	}
	switch format {
	case JFIF:
		return &JFIFReader{data: data}, nil
	case GIFHeader:
		return &GIFHeaderReader{data: data}, nil
	case Exif:
		return &ExifReader{data: data}, nil
	case FormatAuto:
		return nil, fmt.Errorf("%w: no known signature found", errUnsupportedFormat)
	default:
		return nil, fmt.Errorf("%w: %s", errUnsupportedFormat, format)
	}
}

func detectFormat(data []byte) Format {
	switch {
	case bytes.HasPrefix(data, []byte("GIF")):
		return GIFHeader
	case bytes.HasPrefix(data, []byte("Exif\x00\x00")):
		return Exif
	}
	return FormatAuto
}

// Decode decodes opts.Segment into a new Directory.
//
// An error is returned only if the options are invalid.
// Problems in the segment itself are recorded on the returned Directory.
func Decode(opts Options) (*Directory, error) {
	if opts.Segment == nil {
		return nil, ErrInvalidInput
	}
	if opts.Warnf == nil {
		opts.Warnf = func(string, ...any) {}
	}

	r, err := NewSegmentReader(opts.Format, opts.Segment)
	if err != nil {
		return nil, err
	}

	d := NewDirectory(r.Kind())
	r.Extract(d)

	for _, msg := range d.Errors() {
		opts.Warnf("%s: %s", d.Name(), msg)
	}

	return d, nil
}

// DecodeAll decodes the given segments concurrently.
// The returned directories are in the same order as opts.
//
// An invalid Options entry does not stop the others from being decoded.
// The first such error is returned along with the directories, where
// the failed entries are nil.
func DecodeAll(ctx context.Context, opts []Options) ([]*Directory, error) {
	dirs := make([]*Directory, len(opts))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, o := range opts {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			d, err := Decode(o)
			if err != nil {
				return fmt.Errorf("segment %d: %w", i, err)
			}
			dirs[i] = d
			return nil
		})
	}

	return dirs, g.Wait()
}
