package domain

import "time"

// Decode sources. A decode either came out of a carparts.txt save file or was
// typed in as a raw VIN code.
const (
	SourceFile = "file"
	SourceVIN  = "vin"
)

// DecodedPair is the normalized output unit shared by the binary record
// pipeline and the fixed-width VIN pipeline: a field key and its value already
// rendered as text. The binary decoder emits pairs in producer order, the VIN
// splitter in schema order.
type DecodedPair struct {
	Key   string
	Value string
}

// Decode is a saved decode-history entry. Only the complete VIN string is
// persisted; field values are re-derived from it on display, so history rows
// stay useful if the option tables gain entries later.
type Decode struct {
	ID        int64
	Source    string // SourceFile or SourceVIN
	VIN       string
	Notes     string
	CreatedAt time.Time
}
