// Package sfnt reads display metadata out of raw TrueType/OpenType font
// files. Only the pieces of the SFNT container needed to locate the name
// table are decoded; glyph data, metrics, and every other table are
// ignored.
package sfnt

import (
	"encoding/binary"
	"errors"
	"fmt"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Errors reported by FamilyName.
var (
	// ErrNameTableNotFound means the buffer carries no name table, or is
	// too short to hold the table directory that would point to one.
	ErrNameTableNotFound = errors.New("sfnt: no name table")

	// ErrTruncated means the name table or one of its strings lies
	// outside the buffer, or a record declares an implausible length.
	ErrTruncated = errors.New("sfnt: name table truncated")

	// ErrNoFamilyName means the name table holds no family name record.
	ErrNoFamilyName = errors.New("sfnt: no family name record")
)

const (
	nameTag = 0x6e616d65 // "name"

	platformUnicode = 0
	platformWindows = 3

	encodingWindowsBMP = 1

	nameIDFamily = 1

	offsetTableLen = 12 // sfnt version, numTables, searchRange, entrySelector, rangeShift
	tableRecordLen = 16 // tag, checksum, offset, length
	nameHeaderLen  = 6  // format, count, stringOffset
	nameRecordLen  = 12 // six uint16 fields

	// maxNameLen caps a single name string so that a corrupt record
	// length cannot drive a large allocation.
	maxNameLen = 1024
)

type nameRecord struct {
	platformID uint16
	encodingID uint16
	languageID uint16
	nameID     uint16
	length     uint16
	offset     uint16
}

// FamilyName returns the font family name (name ID 1) declared by the
// font file in b. When several family records are present, a
// Windows/Unicode-BMP record wins outright, then the first
// Unicode-platform record, then the first record of any platform.
// Windows/Unicode-BMP strings are decoded as UTF-16BE, everything else
// as Latin-1.
func FamilyName(b []byte) (string, error) {
	tableOff, ok := findNameTable(b)
	if !ok {
		return "", ErrNameTableNotFound
	}

	if uint64(tableOff)+nameHeaderLen > uint64(len(b)) {
		return "", fmt.Errorf("%w: table at %d, buffer is %d bytes", ErrTruncated, tableOff, len(b))
	}
	count := binary.BigEndian.Uint16(b[tableOff+2:])
	_ = binary.BigEndian.Uint16(b[tableOff+4:]) // stringOffset; storage location is derived from count instead

	// String storage starts immediately after the record array; record
	// offsets are relative to that point.
	storage := uint64(tableOff) + nameHeaderLen + uint64(count)*nameRecordLen
	if storage > uint64(len(b)) {
		return "", fmt.Errorf("%w: %d records do not fit the buffer", ErrTruncated, count)
	}

	var (
		chosen nameRecord
		rank   int // 0 none, 1 any platform, 2 unicode, 3 windows BMP
	)
	for i := 0; i < int(count); i++ {
		rec := readNameRecord(b[int(tableOff)+nameHeaderLen+i*nameRecordLen:])
		if rec.nameID != nameIDFamily {
			continue
		}
		switch {
		case rec.platformID == platformWindows && rec.encodingID == encodingWindowsBMP:
			chosen, rank = rec, 3
		case rec.platformID == platformUnicode && rank < 2:
			chosen, rank = rec, 2
		case rank < 1:
			chosen, rank = rec, 1
		}
		if rank == 3 {
			break
		}
	}
	if rank == 0 {
		return "", ErrNoFamilyName
	}

	if chosen.length > maxNameLen {
		return "", fmt.Errorf("%w: name record declares %d bytes", ErrTruncated, chosen.length)
	}
	start := storage + uint64(chosen.offset)
	end := start + uint64(chosen.length)
	if end > uint64(len(b)) {
		return "", fmt.Errorf("%w: name string at %d..%d, buffer is %d bytes", ErrTruncated, start, end, len(b))
	}
	return decodeName(chosen, b[start:end])
}

// findNameTable walks the table directory and returns the offset of the
// name table. A directory that runs off the end of the buffer counts as
// not containing one.
func findNameTable(b []byte) (uint32, bool) {
	if len(b) < offsetTableLen {
		return 0, false
	}
	numTables := int(binary.BigEndian.Uint16(b[4:]))
	for i := 0; i < numTables; i++ {
		rec := offsetTableLen + i*tableRecordLen
		if rec+tableRecordLen > len(b) {
			return 0, false
		}
		if binary.BigEndian.Uint32(b[rec:]) == nameTag {
			return binary.BigEndian.Uint32(b[rec+8:]), true
		}
	}
	return 0, false
}

func readNameRecord(b []byte) nameRecord {
	return nameRecord{
		platformID: binary.BigEndian.Uint16(b[0:]),
		encodingID: binary.BigEndian.Uint16(b[2:]),
		languageID: binary.BigEndian.Uint16(b[4:]),
		nameID:     binary.BigEndian.Uint16(b[6:]),
		length:     binary.BigEndian.Uint16(b[8:]),
		offset:     binary.BigEndian.Uint16(b[10:]),
	}
}

func decodeName(rec nameRecord, raw []byte) (string, error) {
	dec := charmap.ISO8859_1.NewDecoder()
	if rec.platformID == platformWindows && rec.encodingID == encodingWindowsBMP {
		dec = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
	}
	out, err := dec.Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("sfnt: decoding family name: %w", err)
	}
	return string(out), nil
}
