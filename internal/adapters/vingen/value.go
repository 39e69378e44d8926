package vingen

import (
	"encoding/binary"
	"encoding/hex"
	"strconv"
	"unicode/utf8"
)

// readValue consumes one value of the given type tag at *offset and advances
// the cursor past the consumed bytes. The value is always rendered as text so
// it composes uniformly into decoded pairs. ok is false — and the cursor left
// in place — when the buffer cannot satisfy the read.
//
// Tags outside the three known types fall back to a raw 4-byte read rendered
// as lowercase hex: the producer format has further type tags with no meaning
// to this decoder, and keeping the raw bytes avoids silent data loss.
func readValue(data []byte, offset *int, typeTag uint32) (string, bool) {
	switch typeTag {
	case typeText:
		if *offset >= len(data) {
			return "", false
		}
		n := int(data[*offset])
		if *offset+1+n > len(data) {
			return "", false
		}
		raw := data[*offset+1 : *offset+1+n]
		*offset += 1 + n
		if !utf8.Valid(raw) {
			// Malformed text degrades to empty; the bytes are still consumed.
			return "", true
		}
		return string(raw), true

	case typeInt32:
		if *offset+4 > len(data) {
			return "", false
		}
		v := int32(binary.LittleEndian.Uint32(data[*offset:]))
		*offset += 4
		return strconv.FormatInt(int64(v), 10), true

	case typeBool:
		if *offset >= len(data) {
			return "", false
		}
		b := data[*offset] != 0
		*offset++
		if b {
			return "true", true
		}
		return "false", true

	default:
		if *offset+4 > len(data) {
			return "", false
		}
		s := hex.EncodeToString(data[*offset : *offset+4])
		*offset += 4
		return s, true
	}
}
