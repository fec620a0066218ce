// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package segmeta

import (
	"fmt"
	"maps"
	"slices"
)

// TagID identifies a decodable field within a directory kind.
type TagID uint16

// TagCatalog maps tag IDs to display names.
// A TagCatalog is never modified after construction and is safe for concurrent use.
type TagCatalog struct {
	names map[TagID]string
}

// NewTagCatalog creates a new TagCatalog from names.
// The map is copied.
func NewTagCatalog(names map[TagID]string) TagCatalog {
	return TagCatalog{names: maps.Clone(names)}
}

// Name returns the display name of id, or a generic label if id is not registered.
func (c TagCatalog) Name(id TagID) string {
	if name, found := c.names[id]; found {
		return name
	}
	return fmt.Sprintf("Unknown tag (0x%04x)", uint16(id))
}

// Has reports whether id is registered.
func (c TagCatalog) Has(id TagID) bool {
	_, found := c.names[id]
	return found
}

// IDs returns the registered tag IDs in ascending order.
func (c TagCatalog) IDs() []TagID {
	return slices.Sorted(maps.Keys(c.names))
}

// Len returns the number of registered tags.
func (c TagCatalog) Len() int {
	return len(c.names)
}

// JFIF tags.
const (
	TagJFIFVersion TagID = 1
	TagJFIFUnits   TagID = 2
	TagJFIFResX    TagID = 3
	TagJFIFResY    TagID = 4
)

// GIF header tags.
const (
	TagGIFFormatVersion       TagID = 1
	TagGIFImageWidth          TagID = 2
	TagGIFImageHeight         TagID = 3
	TagGIFColorTableSize      TagID = 4
	TagGIFIsColorTableSorted  TagID = 5
	TagGIFBitsPerPixel        TagID = 6
	TagGIFHasGlobalColorTable TagID = 7
	TagGIFTransparentColorIdx TagID = 8
	TagGIFPixelAspectRatio    TagID = 9
)

var (
	catalogJFIF = NewTagCatalog(map[TagID]string{
		TagJFIFVersion: "Format Version",
		TagJFIFUnits:   "Units",
		TagJFIFResX:    "X Resolution",
		TagJFIFResY:    "Y Resolution",
	})

	catalogGIFHeader = NewTagCatalog(map[TagID]string{
		TagGIFFormatVersion:       "GIF Format Version",
		TagGIFImageWidth:          "Image Width",
		TagGIFImageHeight:         "Image Height",
		TagGIFColorTableSize:      "Color Table Size",
		TagGIFIsColorTableSorted:  "Is Color Table Sorted",
		TagGIFBitsPerPixel:        "Bits per Pixel",
		TagGIFHasGlobalColorTable: "Has Global Color Table",
		TagGIFTransparentColorIdx: "Transparent Color Index",
		TagGIFPixelAspectRatio:    "Pixel Aspect Ratio",
	})

	catalogExifIFD0 = NewTagCatalog(exifIFD0Fields)
)
