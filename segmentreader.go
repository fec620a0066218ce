// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package segmeta

// SegmentReader decodes one segment into a Directory.
//
// Extract never fails: decoding stops at the first error, which is recorded
// with Directory.AddError. Values decoded before the error are kept.
type SegmentReader interface {
	// Kind returns the kind of Directory this reader populates.
	Kind() *DirectoryKind

	// Extract decodes the segment into d.
	Extract(d *Directory)
}

// field decodes one entry of a fixed segment layout and stores the result in d.
// Nothing must be stored if an error is returned.
type field func(r *BufferReader, d *Directory) error

// decodeFields runs fields in layout order.
// It returns false if decoding stopped on an error.
func decodeFields(r *BufferReader, d *Directory, fields []field) bool {
	for _, f := range fields {
		if err := f(r, d); err != nil {
			d.AddError(err.Error())
			return false
		}
	}
	return true
}

func intField32(id TagID) field {
	return func(r *BufferReader, d *Directory) error {
		v, err := r.ReadInt32()
		if err != nil {
			return err
		}
		d.SetInt(id, int(v))
		return nil
	}
}

func uintField16(id TagID) field {
	return func(r *BufferReader, d *Directory) error {
		v, err := r.ReadUint16()
		if err != nil {
			return err
		}
		d.SetInt(id, int(v))
		return nil
	}
}

func stringField(id TagID, n int) field {
	return func(r *BufferReader, d *Directory) error {
		v, err := r.ReadString(n)
		if err != nil {
			return err
		}
		d.SetString(id, v)
		return nil
	}
}

func skipField(n int) field {
	return func(r *BufferReader, d *Directory) error {
		return r.Skip(n)
	}
}
