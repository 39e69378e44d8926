package vingen

import (
	"encoding/binary"
	"strings"

	"github.com/csg33k/vin-decoder/internal/domain"
)

// Parse locates the VINGen4 record in a raw carparts.txt buffer and decodes
// its dictionary into ordered pairs. ok is false when the buffer holds no
// decodable record — a valid outcome for truncated or foreign files, not an
// error.
func Parse(data []byte) ([]domain.DecodedPair, bool) {
	body, ok := FindRecord(data)
	if !ok {
		return nil, false
	}
	return DecodeRecord(body)
}

// FindRecord scans data for tagged entries and returns the body of the first
// entry named VINGen4. Entries whose tag does not match are skipped by their
// full declared length, not by marker+1: bodies may contain the marker byte as
// data, and resuming inside an already-classified entry would produce false
// positives. Any read that would run past the buffer ends the scan with
// ok=false; a partial entry is never returned.
func FindRecord(data []byte) ([]byte, bool) {
	for i := 0; i < len(data); {
		if data[i] != entryMarker {
			i++
			continue
		}
		if i+1 >= len(data) {
			break
		}
		tagLen := int(data[i+1])
		if i+2+tagLen+4 > len(data) {
			break
		}
		tag := strings.ToValidUTF8(string(data[i+2:i+2+tagLen]), "�")
		bodyLen := int(binary.LittleEndian.Uint32(data[i+2+tagLen:]))
		bodyStart := i + 2 + tagLen + 4
		bodyEnd := bodyStart + bodyLen
		if bodyEnd > len(data) {
			break
		}
		if tag == recordTag {
			return data[bodyStart:bodyEnd], true
		}
		i = bodyEnd
	}
	return nil, false
}
