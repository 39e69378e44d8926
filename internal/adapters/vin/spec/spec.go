// Package spec defines the ordered fixed-width VIN field layout used by the
// My Winter Car VINGen4 producer. Field widths are fixed at definition time;
// the expected length of a complete VIN is always the sum of the widths, never
// a hardcoded constant. The same ordering drives the positional split of a
// pasted VIN and the row order of every rendered decode table.
package spec

// Field is one positional VIN field: a lookup key, a human-readable name, and
// a width in characters.
type Field struct {
	Key     string
	Display string
	Width   int
}

// SerialKey names the free-form serial-number field, which is exempt from
// unknown-code flagging.
const SerialKey = "Serial"

var fields = []Field{
	{Key: "Country", Display: "Country", Width: 1},
	{Key: "AssemblyPlant", Display: "Assembly Plant", Width: 1},
	{Key: "Model", Display: "Model", Width: 1},
	{Key: "Body", Display: "Body", Width: 1},
	{Key: "Version", Display: "Version", Width: 1},
	{Key: "Year", Display: "Year", Width: 1},
	{Key: "Month", Display: "Month", Width: 1},
	{Key: SerialKey, Display: "Serial", Width: 5},
	{Key: "Drive", Display: "Drive", Width: 1},
	{Key: "Engine", Display: "Engine", Width: 2},
	{Key: "Gearbox", Display: "Gearbox", Width: 1},
	{Key: "AxleRatio", Display: "Axle Ratio", Width: 1},
	{Key: "AxleLock", Display: "Axle Lock", Width: 1},
	{Key: "ColorsBody", Display: "Body Colour", Width: 1},
	{Key: "VinylRoof", Display: "Vinyl Roof", Width: 1},
	{Key: "InteriorTrim", Display: "Interior Trim", Width: 1},
	{Key: "Radio", Display: "Radio", Width: 1},
	{Key: "InstrumentPanel", Display: "Instrument Panel", Width: 1},
	{Key: "Windshield", Display: "Windshield", Width: 1},
	{Key: "Seats", Display: "Seats", Width: 1},
	{Key: "Suspension", Display: "Suspension", Width: 1},
	{Key: "PowerBrakes", Display: "Brakes", Width: 1},
	{Key: "Wheels", Display: "Wheels", Width: 1},
	{Key: "WindowHeater", Display: "Rear Window", Width: 1},
}

var totalLen int

func init() {
	for _, f := range fields {
		totalLen += f.Width
	}
}

// Fields returns the ordered field catalog. Callers must treat the returned
// slice as read-only.
func Fields() []Field { return fields }

// TotalLen returns the expected length of a complete VIN: the sum of all
// field widths.
func TotalLen() int { return totalLen }
