// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package segmeta

import (
	"fmt"
	"maps"
	"slices"
)

// Tag is a decoded tag value with its catalog name.
type Tag struct {
	ID    TagID
	Name  string
	Value any
}

// Directory holds the tag values decoded from one segment and the errors
// recorded while decoding it.
//
// A tag that was never set is absent, which is distinct from a zero value.
// Note that this is not thread safe while it is being populated.
type Directory struct {
	kind   *DirectoryKind
	values map[TagID]any
	errs   []string
}

// NewDirectory creates a new, empty Directory of the given kind.
func NewDirectory(kind *DirectoryKind) *Directory {
	if kind == nil {
		panic("segmeta: nil directory kind")
	}
	return &Directory{
		kind:   kind,
		values: make(map[TagID]any),
	}
}

// Name returns the display name of the directory kind.
func (d *Directory) Name() string {
	return d.kind.Name()
}

// Kind returns the directory kind.
func (d *Directory) Kind() *DirectoryKind {
	return d.kind
}

// TagName returns the catalog name of id.
func (d *Directory) TagName(id TagID) string {
	return d.kind.TagName(id)
}

// AddError records a decode failure.
func (d *Directory) AddError(msg string) {
	d.errs = append(d.errs, msg)
}

// HasErrors reports whether any errors were recorded.
func (d *Directory) HasErrors() bool {
	return len(d.errs) > 0
}

// Errors returns a copy of the recorded errors in the order they were added.
func (d *Directory) Errors() []string {
	return slices.Clone(d.errs)
}

// SetInt sets an integer value.
func (d *Directory) SetInt(id TagID, v int) {
	d.values[id] = v
}

// SetInts sets an integer array value. The slice is copied.
func (d *Directory) SetInts(id TagID, v []int) {
	d.values[id] = slices.Clone(v)
}

// SetBool sets a boolean value.
func (d *Directory) SetBool(id TagID, v bool) {
	d.values[id] = v
}

// SetString sets a string value.
func (d *Directory) SetString(id TagID, v string) {
	d.values[id] = v
}

// SetRat sets a rational value.
func (d *Directory) SetRat(id TagID, v Rational) {
	d.values[id] = v
}

// SetBytes sets a raw byte value. The slice is copied.
func (d *Directory) SetBytes(id TagID, v []byte) {
	d.values[id] = slices.Clone(v)
}

// Has reports whether id has been set.
func (d *Directory) Has(id TagID) bool {
	_, found := d.values[id]
	return found
}

// Len returns the number of tags set.
func (d *Directory) Len() int {
	return len(d.values)
}

// TagIDs returns the IDs of all set tags in ascending order.
func (d *Directory) TagIDs() []TagID {
	return slices.Sorted(maps.Keys(d.values))
}

// Tags returns all set tags in ascending ID order.
func (d *Directory) Tags() []Tag {
	ids := d.TagIDs()
	tags := make([]Tag, len(ids))
	for i, id := range ids {
		tags[i] = Tag{ID: id, Name: d.TagName(id), Value: d.values[id]}
	}
	return tags
}

// Value returns the raw value of id and whether it was set.
func (d *Directory) Value(id TagID) (any, bool) {
	v, found := d.values[id]
	return v, found
}

// Int returns the integer value of id.
func (d *Directory) Int(id TagID) (int, error) {
	return getAs[int](d, id, "int")
}

// Ints returns the integer array value of id.
func (d *Directory) Ints(id TagID) ([]int, error) {
	v, err := getAs[[]int](d, id, "[]int")
	return slices.Clone(v), err
}

// Bool returns the boolean value of id.
func (d *Directory) Bool(id TagID) (bool, error) {
	return getAs[bool](d, id, "bool")
}

// StringValue returns the string value of id.
func (d *Directory) StringValue(id TagID) (string, error) {
	return getAs[string](d, id, "string")
}

// Rat returns the rational value of id.
// The result can be asserted to Rat[uint32] or Rat[int32].
func (d *Directory) Rat(id TagID) (Rational, error) {
	return getAs[Rational](d, id, "rational")
}

// Bytes returns the raw byte value of id.
func (d *Directory) Bytes(id TagID) ([]byte, error) {
	v, err := getAs[[]byte](d, id, "[]byte")
	return slices.Clone(v), err
}

func getAs[T any](d *Directory, id TagID, typeName string) (T, error) {
	var zero T
	v, found := d.values[id]
	if !found {
		return zero, fmt.Errorf("%w: %q (0x%04x) in %s", ErrTagNotFound, d.TagName(id), uint16(id), d.Name())
	}
	t, ok := v.(T)
	if !ok {
		return zero, &TagTypeError{Tag: id, Name: d.TagName(id), Requested: typeName, Actual: v}
	}
	return t, nil
}
