// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package segmeta

// DirectoryKind identifies a family of directories: a fixed display name
// and the catalog used to name its tags.
type DirectoryKind struct {
	name    string
	catalog TagCatalog
}

// NewDirectoryKind creates a new DirectoryKind.
func NewDirectoryKind(name string, catalog TagCatalog) *DirectoryKind {
	return &DirectoryKind{name: name, catalog: catalog}
}

var (
	// KindJFIF is the kind of directories decoded from the JPEG APP0 JFIF segment.
	KindJFIF = NewDirectoryKind("JFIF", catalogJFIF)
	// KindGIFHeader is the kind of directories decoded from the GIF header and logical screen descriptor.
	KindGIFHeader = NewDirectoryKind("GIF Header", catalogGIFHeader)
	// KindExifIFD0 is the kind of directories decoded from IFD0 of an Exif APP1 segment.
	KindExifIFD0 = NewDirectoryKind("Exif IFD0", catalogExifIFD0)
)

// Name returns the display name, e.g. "GIF Header".
func (k *DirectoryKind) Name() string {
	return k.name
}

// Catalog returns the tag catalog.
func (k *DirectoryKind) Catalog() TagCatalog {
	return k.catalog
}

// TagName returns the display name of id in this kind's catalog.
func (k *DirectoryKind) TagName(id TagID) string {
	return k.catalog.Name(id)
}

func (k *DirectoryKind) String() string {
	return k.name
}
