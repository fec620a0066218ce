// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package segmeta

import "fmt"

// Describer returns a human readable description of tag id in d.
// It returns false if it has nothing to say about the tag.
type Describer func(d *Directory, id TagID) (string, bool)

// Describers maps a directory kind to its Describer.
// Formatting is supplied by the caller; no Describer is registered by this package.
type Describers map[*DirectoryKind]Describer

// Describe describes tag id in d using the Describer registered for d's kind.
// It falls back to the plain value, and returns "" if the tag is not set.
func (m Describers) Describe(d *Directory, id TagID) string {
	if describe, found := m[d.Kind()]; found {
		if s, ok := describe(d, id); ok {
			return s
		}
	}
	v, found := d.Value(id)
	if !found {
		return ""
	}
	switch vv := v.(type) {
	case []byte:
		return fmt.Sprintf("(Binary data %d bytes)", len(vv))
	case fmt.Stringer:
		return vv.String()
	default:
		return fmt.Sprint(vv)
	}
}
