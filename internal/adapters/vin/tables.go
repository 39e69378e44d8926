package vin

import "github.com/csg33k/vin-decoder/internal/adapters/vin/spec"

// Labels used by Describe when no table entry matches.
const (
	StandardLabel = "Standard / None"
	UnknownLabel  = "!! [UNKNOWN] !!"
)

// options maps field key → raw code → description. Built once, never mutated;
// concurrent reads need no synchronization. Codes absent here are either
// "standard/none" (the literal "-" convention) or unknown.
var options = map[string]map[string]string{
	"Country": {"U": "Corris Britain"},
	"AssemblyPlant": {
		"A": "Dagenham",
		"B": "Manchester",
		"C": "Saarlouis",
		"K": "Rheine",
	},
	"Model": {"B": "Rivett"},
	"Body":  {"B": "2D Pillared Sedan"},
	"Version": {
		"D": "L",
		"E": "LX",
		"G": "SLX",
		"P": "GT",
	},
	"Year": {
		"L": "1971",
		"M": "1972",
		"N": "1973",
		"P": "1974 (Facelift)",
		"R": "1975",
		"S": "1976",
	},
	"Month": {
		"C": "01",
		"K": "02",
		"D": "03",
		"E": "04",
		"L": "05",
		"Y": "06",
		"S": "07",
		"T": "08",
		"J": "09",
		"U": "10",
		"M": "11",
		"P": "12",
	},
	"Drive": {"1": "RWD"},
	"Engine": {
		"NA": "Standard 2.0",
		"NE": "High Performance 2.0",
	},
	"Gearbox": {
		"7": "3-spd Automatic",
		"B": "4-spd Manual",
	},
	"AxleRatio": {
		"S": "3.44",
		"B": "3.75",
		"C": "3.89",
		"N": "4.11",
		"E": "4.44",
	},
	"AxleLock": {
		"A": "Open",
		"B": "LSD",
	},
	"ColorsBody": {
		"A": "Dark Grey",
		"B": "Nature White",
		"C": "Sand",
		"D": "Asphalt Grey",
		"E": "Blue",
		"F": "Sun Yellow",
		"G": "Dark Navy",
		"H": "Royal Red",
		"I": "Brown",
		"J": "Red",
		"K": "Electric Green",
		"L": "White Pearl",
		"M": "Spring Green",
		"R": "Purple",
		"T": "Yellow",
		"U": "Sky Blue",
		"V": "Orange",
		"X": "Navy Blue",
		"Y": "Special",
	},
	"VinylRoof": {
		"-": "Paint",
		"A": "Black",
		"B": "White",
		"C": "Tan",
		"K": "Blue",
		"M": "Dark Brown",
	},
	"InteriorTrim": {
		"N": "Red",
		"A": "Black",
		"K": "Tan",
		"F": "Blue",
		"Y": "Special",
	},
	"Radio": {
		"-": "Radio delete",
		"J": "Radio",
	},
	"InstrumentPanel": {
		"-": "Standard",
		"G": "Clock",
		"M": "Tachometer",
	},
	"Windshield": {
		"1": "Clear",
		"2": "Tinted",
		"F": "Sunstrip",
	},
	"Seats": {
		"8": "Standard",
		"B": "Bucket Style",
	},
	"Suspension": {
		"A": "Standard",
		"B": "Standard + Stiffened",
		"4": "Lowered",
		"M": "Lowered + Stiffened",
	},
	"PowerBrakes": {
		"-": "Standard",
		"B": "Power Brakes",
	},
	"Wheels": {
		"A": `13" Steel`,
		"B": `13" Steel + hubcaps`,
		"4": `14" Sport`,
		"M": `14" Steel / 14" Octo`,
	},
	"WindowHeater": {
		"-": "Standard",
		"B": "Heated",
		"M": "Standard + Window Grille",
	},
}

// Lookup resolves a raw field code against the option tables. An absent
// mapping is a valid outcome, distinguishable from a mapped empty description.
func Lookup(fieldKey, raw string) (string, bool) {
	m, ok := options[fieldKey]
	if !ok {
		return "", false
	}
	desc, ok := m[raw]
	return desc, ok
}

// Describe applies the presentation policy on top of Lookup: an unmapped "-"
// reads as standard/none, an unmapped non-empty code is flagged as unknown
// except for the free-form serial field, and an empty value stays blank.
func Describe(fieldKey, raw string) string {
	if desc, ok := Lookup(fieldKey, raw); ok {
		return desc
	}
	switch {
	case raw == "-":
		return StandardLabel
	case raw != "" && fieldKey != spec.SerialKey:
		return UnknownLabel
	default:
		return ""
	}
}

// InfoNotes returns the special-package info lines for a decoded field-value
// map: the SLX + Tachometer combination and the GT equipment package.
func InfoNotes(values map[string]string) []string {
	var notes []string
	if values["Version"] == "G" && values["InstrumentPanel"] == "M" {
		notes = append(notes, "SLX + Tachometer Package: Center console & Sport steering wheel")
	} else if values["Version"] == "P" {
		notes = append(notes, "GT Equipment: Sport steering wheel, Special gear stick & Quick steering ratio")
	}
	return notes
}
