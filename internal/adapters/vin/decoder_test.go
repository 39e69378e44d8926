package vin_test

import (
	"strings"
	"testing"

	"github.com/csg33k/vin-decoder/internal/adapters/vin"
	"github.com/csg33k/vin-decoder/internal/adapters/vin/spec"
)

// sampleVIN is a full-length factory-style code: every field populated,
// option-delete positions carrying "-".
const sampleVIN = "UABBDLCSEEE17BAABAA-N-11---8A"

func TestDecode_RoundTrip(t *testing.T) {
	if len(sampleVIN) != spec.TotalLen() {
		t.Fatalf("sample VIN is %d chars, schema total is %d", len(sampleVIN), spec.TotalLen())
	}
	values := vin.Decode(sampleVIN)
	if got := vin.Complete(values); got != sampleVIN {
		t.Errorf("round-trip mismatch:\n got  %q\n want %q", got, sampleVIN)
	}
}

func TestDecode_SchemaOrderSplit(t *testing.T) {
	values := vin.Decode(sampleVIN)
	want := map[string]string{
		"Country":         "U",
		"AssemblyPlant":   "A",
		"Model":           "B",
		"Body":            "B",
		"Version":         "D",
		"Year":            "L",
		"Month":           "C",
		"Serial":          "SEEE1",
		"Drive":           "7",
		"Engine":          "BA",
		"Gearbox":         "A",
		"AxleRatio":       "B",
		"AxleLock":        "A",
		"ColorsBody":      "A",
		"VinylRoof":       "-",
		"InteriorTrim":    "N",
		"Radio":           "-",
		"InstrumentPanel": "1",
		"Windshield":      "1",
		"Seats":           "-",
		"Suspension":      "-",
		"PowerBrakes":     "-",
		"Wheels":          "8",
		"WindowHeater":    "A",
	}
	if len(values) != len(want) {
		t.Fatalf("got %d fields, want %d", len(values), len(want))
	}
	for k, w := range want {
		if values[k] != w {
			t.Errorf("field %s = %q, want %q", k, values[k], w)
		}
	}
}

func TestDecode_ShortInput(t *testing.T) {
	// Cut mid-Serial: fields past the point of exhaustion come back empty,
	// and the truncated field yields only the available characters.
	values := vin.Decode("UABBDLCSE")
	if values["Month"] != "C" {
		t.Errorf("Month = %q, want C", values["Month"])
	}
	if values["Serial"] != "SE" {
		t.Errorf("Serial = %q, want SE (truncated)", values["Serial"])
	}
	for _, key := range []string{"Drive", "Engine", "WindowHeater"} {
		if values[key] != "" {
			t.Errorf("field %s = %q, want empty past exhaustion", key, values[key])
		}
	}
}

func TestDecode_EmptyInput(t *testing.T) {
	values := vin.Decode("")
	for _, f := range spec.Fields() {
		if values[f.Key] != "" {
			t.Errorf("field %s = %q, want empty", f.Key, values[f.Key])
		}
	}
}

func TestDecode_TrailingIgnored(t *testing.T) {
	long := sampleVIN + "ZZZ"
	values := vin.Decode(long)
	if got := vin.Complete(values); got != sampleVIN {
		t.Errorf("trailing characters leaked into decode: got %q", got)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  uabbd ", "UABBD"},
		{"ua bb d", "UABBD"},
		{strings.ToLower(sampleVIN), sampleVIN},
		{"", ""},
	}
	for _, tt := range tests {
		if got := vin.Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
