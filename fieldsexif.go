// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package segmeta

// Exif IFD0 tags.
const (
	TagExifImageWidth       TagID = 0x0100
	TagExifImageHeight      TagID = 0x0101
	TagExifImageDescription TagID = 0x010e
	TagExifMake             TagID = 0x010f
	TagExifModel            TagID = 0x0110
	TagExifOrientation      TagID = 0x0112
	TagExifXResolution      TagID = 0x011a
	TagExifYResolution      TagID = 0x011b
	TagExifResolutionUnit   TagID = 0x0128
	TagExifSoftware         TagID = 0x0131
	TagExifDateTime         TagID = 0x0132
	TagExifArtist           TagID = 0x013b
	TagExifCopyright        TagID = 0x8298
	TagExifIFDPointer       TagID = 0x8769
	TagExifGPSInfoPointer   TagID = 0x8825
)

// Source: https://exiftool.org/TagNames/EXIF.html
var exifIFD0Fields = map[TagID]string{
	TagExifImageWidth:       "Image Width",
	TagExifImageHeight:      "Image Height",
	0x0102:                  "Bits Per Sample",
	0x0103:                  "Compression",
	0x0106:                  "Photometric Interpretation",
	TagExifImageDescription: "Image Description",
	TagExifMake:             "Make",
	TagExifModel:            "Model",
	0x0111:                  "Strip Offsets",
	TagExifOrientation:      "Orientation",
	0x0115:                  "Samples Per Pixel",
	0x0116:                  "Rows Per Strip",
	0x0117:                  "Strip Byte Counts",
	TagExifXResolution:      "X Resolution",
	TagExifYResolution:      "Y Resolution",
	0x011c:                  "Planar Configuration",
	TagExifResolutionUnit:   "Resolution Unit",
	TagExifSoftware:         "Software",
	TagExifDateTime:         "Date/Time",
	TagExifArtist:           "Artist",
	0x013e:                  "White Point",
	0x013f:                  "Primary Chromaticities",
	0x0211:                  "YCbCr Coefficients",
	0x0212:                  "YCbCr Sub-Sampling",
	0x0213:                  "YCbCr Positioning",
	0x0214:                  "Reference Black/White",
	TagExifCopyright:        "Copyright",
	TagExifIFDPointer:       "Exif Offset",
	TagExifGPSInfoPointer:   "GPS Info",
	0x9c9b:                  "Windows XP Title",
	0x9c9c:                  "Windows XP Comment",
	0x9c9d:                  "Windows XP Author",
	0x9c9e:                  "Windows XP Keywords",
	0x9c9f:                  "Windows XP Subject",
}
