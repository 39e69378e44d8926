package vin

import "fmt"

// RGB is a swatch colour for the colour-bearing fields.
type RGB struct {
	R, G, B uint8
}

// Hex renders the colour as a CSS hex literal, e.g. "#0050c8".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// swatches maps the three colour-bearing fields to code → colour.
var swatches = map[string]map[string]RGB{
	"ColorsBody": {
		"A": {64, 64, 64},    // Dark Grey
		"B": {240, 240, 240}, // Nature White
		"C": {210, 180, 140}, // Sand
		"D": {80, 80, 80},    // Asphalt Grey
		"E": {0, 80, 200},    // Blue
		"F": {255, 220, 40},  // Sun Yellow
		"G": {10, 10, 60},    // Dark Navy
		"H": {180, 0, 0},     // Royal Red
		"I": {120, 80, 40},   // Brown
		"J": {200, 0, 0},     // Red
		"K": {0, 200, 80},    // Electric Green
		"L": {255, 255, 255}, // White Pearl
		"M": {120, 255, 120}, // Spring Green
		"R": {160, 0, 160},   // Purple
		"T": {255, 255, 0},   // Yellow
		"U": {120, 180, 255}, // Sky Blue
		"V": {255, 120, 0},   // Orange
		"X": {0, 0, 120},     // Navy Blue
		"Y": {212, 175, 55},  // Special (gold)
	},
	"VinylRoof": {
		"-": {200, 200, 200}, // Paint
		"A": {20, 20, 20},    // Black
		"B": {255, 255, 255}, // White
		"C": {210, 180, 140}, // Tan
		"K": {0, 80, 200},    // Blue
		"M": {80, 40, 20},    // Dark Brown
	},
	"InteriorTrim": {
		"N": {200, 0, 0},     // Red
		"A": {20, 20, 20},    // Black
		"K": {210, 180, 140}, // Tan
		"F": {0, 80, 200},    // Blue
		"Y": {212, 175, 55},  // Special (gold)
	},
}

// SwatchColor returns the swatch colour for a field code, if the field is
// colour-bearing and the code is known.
func SwatchColor(fieldKey, code string) (RGB, bool) {
	m, ok := swatches[fieldKey]
	if !ok {
		return RGB{}, false
	}
	c, ok := m[code]
	return c, ok
}

// SwatchColorWithBody is SwatchColor with the paint-matches-body rule applied:
// a VinylRoof value of "-" (Paint) takes the body colour's swatch.
func SwatchColorWithBody(fieldKey, code, bodyCode string) (RGB, bool) {
	if fieldKey == "VinylRoof" && code == "-" {
		if c, ok := SwatchColor("ColorsBody", bodyCode); ok {
			return c, true
		}
	}
	return SwatchColor(fieldKey, code)
}
