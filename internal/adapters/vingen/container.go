package vingen

import (
	"encoding/binary"

	"github.com/csg33k/vin-decoder/internal/domain"
)

// header is the self-describing container header at the start of a record
// body. size is the number of body bytes the header occupies.
type header struct {
	kind      byte
	keyType   uint32
	valueType uint32
	size      int
}

// parseHeader reads the container header. Byte 0 is the container kind, with
// the producer's 0xFF sentinel remapped to 0x00 ("no special kind"); byte 1 is
// reserved and skipped. Dictionary containers carry a key type tag before the
// value type tag. The trailing property-size field (1 byte when the key type
// is zero, else 2) encodes producer-side metadata and is skipped, not
// interpreted.
func parseHeader(body []byte) (header, bool) {
	if len(body) < 2 {
		return header{}, false
	}
	h := header{kind: body[0]}
	if h.kind == 0xFF {
		h.kind = 0x00
	}
	off := 2
	if h.kind == containerDictionary {
		if off+4 > len(body) {
			return header{}, false
		}
		h.keyType = binary.LittleEndian.Uint32(body[off:])
		off += 4
	}
	if off+4 > len(body) {
		return header{}, false
	}
	h.valueType = binary.LittleEndian.Uint32(body[off:])
	off += 4
	if h.keyType == 0 {
		off++
	} else {
		off += 2
	}
	h.size = off
	return h, true
}

// DecodeRecord interprets a VINGen4 record body: header, then a count-prefixed
// sequence of (key, value) pairs in producer order. Only dictionary containers
// carry data; any other kind yields ok=false. A zero-pair dictionary is a
// valid decode.
func DecodeRecord(body []byte) ([]domain.DecodedPair, bool) {
	h, ok := parseHeader(body)
	if !ok || h.kind != containerDictionary {
		return nil, false
	}
	if h.size > len(body) {
		return nil, false
	}
	return decodeDictionary(body[h.size:], h.keyType, h.valueType), true
}

// decodeDictionary reads the 4-byte LE pair count and then count (key, value)
// pairs through a shared cursor. A failed read for any key or value degrades
// to an empty string for that field rather than aborting the decode: partial
// garbage beats losing the whole record over one malformed field.
func decodeDictionary(data []byte, keyType, valueType uint32) []domain.DecodedPair {
	if len(data) < 4 {
		return nil
	}
	count := int(binary.LittleEndian.Uint32(data[:4]))
	offset := 4
	var pairs []domain.DecodedPair
	for n := 0; n < count; n++ {
		key, _ := readValue(data, &offset, keyType)
		val, _ := readValue(data, &offset, valueType)
		pairs = append(pairs, domain.DecodedPair{Key: key, Value: val})
		if offset >= len(data) && n+1 < count {
			// Cursor exhausted: a corrupt count would only repeat empty
			// pairs from here, so the decode terminates with what it has.
			break
		}
	}
	return pairs
}
