// Package fonttest assembles minimal SFNT buffers for tests.
package fonttest

import (
	"encoding/binary"
	"unicode/utf16"
)

// NameRecord describes one entry in a synthetic name table.
type NameRecord struct {
	PlatformID uint16
	EncodingID uint16
	LanguageID uint16
	NameID     uint16
	Value      []byte

	// DeclaredLength, when non-zero, is written into the record's length
	// field in place of len(Value) so tests can declare more bytes than
	// are actually stored.
	DeclaredLength uint16
}

// Table is one table in a synthetic font file.
type Table struct {
	Tag  string
	Data []byte

	// OffsetOverride, when non-zero, is written into the table directory
	// in place of the table's real offset.
	OffsetOverride uint32
}

// UTF16BE encodes s as big-endian UTF-16, the storage encoding of
// Windows-platform name records.
func UTF16BE(s string) []byte {
	var out []byte
	for _, u := range utf16.Encode([]rune(s)) {
		out = binary.BigEndian.AppendUint16(out, u)
	}
	return out
}

// NameTable builds a format-0 name table holding recs in order, with
// string storage following the record array directly.
func NameTable(recs ...NameRecord) []byte {
	var table, storage []byte
	// Header: format, count, stringOffset.
	table = binary.BigEndian.AppendUint16(table, 0)
	table = binary.BigEndian.AppendUint16(table, uint16(len(recs)))
	table = binary.BigEndian.AppendUint16(table, uint16(6+12*len(recs)))
	for _, r := range recs {
		length := uint16(len(r.Value))
		if r.DeclaredLength != 0 {
			length = r.DeclaredLength
		}
		table = binary.BigEndian.AppendUint16(table, r.PlatformID)
		table = binary.BigEndian.AppendUint16(table, r.EncodingID)
		table = binary.BigEndian.AppendUint16(table, r.LanguageID)
		table = binary.BigEndian.AppendUint16(table, r.NameID)
		table = binary.BigEndian.AppendUint16(table, length)
		table = binary.BigEndian.AppendUint16(table, uint16(len(storage)))
		storage = append(storage, r.Value...)
	}
	return append(table, storage...)
}

// SFNT wraps tables in an offset table and table directory. Checksums
// are zeroed; nothing under test reads them.
func SFNT(tables ...Table) []byte {
	var buf []byte
	buf = binary.BigEndian.AppendUint32(buf, 0x00010000) // TrueType outlines
	buf = binary.BigEndian.AppendUint16(buf, uint16(len(tables)))
	buf = append(buf, 0, 0, 0, 0, 0, 0) // searchRange, entrySelector, rangeShift

	offset := uint32(12 + 16*len(tables))
	var data []byte
	for _, t := range tables {
		off := offset + uint32(len(data))
		if t.OffsetOverride != 0 {
			off = t.OffsetOverride
		}
		buf = append(buf, t.Tag[:4]...)
		buf = binary.BigEndian.AppendUint32(buf, 0) // checksum
		buf = binary.BigEndian.AppendUint32(buf, off)
		buf = binary.BigEndian.AppendUint32(buf, uint32(len(t.Data)))
		data = append(data, t.Data...)
	}
	return append(buf, data...)
}

// Font builds a font whose name table holds recs, preceded by a dummy
// head table so the name table is not the first directory entry.
func Font(recs ...NameRecord) []byte {
	return SFNT(
		Table{Tag: "head", Data: make([]byte, 54)},
		Table{Tag: "name", Data: NameTable(recs...)},
	)
}

// FamilyFont builds a font that declares family name ID 1 in both a
// Macintosh/Roman and a Windows/Unicode-BMP record, the layout real
// fonts ship with.
func FamilyFont(family string) []byte {
	return Font(
		NameRecord{PlatformID: 1, NameID: 1, Value: []byte(family)},
		NameRecord{PlatformID: 3, EncodingID: 1, LanguageID: 0x0409, NameID: 1, Value: UTF16BE(family)},
	)
}
