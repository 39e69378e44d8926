// Package vingen decodes the VINGen4 record embedded in the game's
// carparts.txt save file: a stream of tagged, length-prefixed entries, one of
// which carries a typed dictionary of vehicle identification fields.
//
// The format is produced by an external application and may drift slightly
// between game versions, so every decode path degrades instead of failing:
// truncation reads as "not found", an unreadable field reads as an empty
// string, and an unrecognized type tag falls back to raw hex. Nothing in this
// package panics on malformed input.
package vingen

// Entry framing: [0x7E][tag_len:1][tag:tag_len][body_len:4 LE u32][body].
const entryMarker byte = 0x7E

// recordTag names the record of interest inside the entry stream.
const recordTag = "VINGen4"

// containerDictionary is the only container kind this decoder interprets.
const containerDictionary byte = 0x52

// Value type tags. Opaque 32-bit magic numbers from the producer format;
// they must match bit-for-bit and are never derived.
const (
	typeText  uint32 = 0xFDE9F1EE
	typeInt32 uint32 = 0xE2A80856
	typeBool  uint32 = 0xAD4D7C9C
)
