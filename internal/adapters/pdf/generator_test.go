package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/csg33k/vin-decoder/internal/adapters/vin"
	"github.com/csg33k/vin-decoder/internal/domain"
)

func TestGeneratePDF(t *testing.T) {
	d := &domain.Decode{
		ID:        7,
		Source:    domain.SourceVIN,
		VIN:       "UABBDLCSEEE17BAABAA-N-11---8A",
		CreatedAt: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
	}

	var buf bytes.Buffer
	if err := GeneratePDF(d, vin.Decode(d.VIN), &buf); err != nil {
		t.Fatalf("generate: %v", err)
	}
	out := buf.Bytes()
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Error("output is not a PDF document")
	}
	if len(out) < 1000 {
		t.Errorf("suspiciously small PDF: %d bytes", len(out))
	}
}

func TestGeneratePDF_EmptyValues(t *testing.T) {
	d := &domain.Decode{ID: 1, Source: domain.SourceFile, VIN: "", CreatedAt: time.Now()}
	var buf bytes.Buffer
	if err := GeneratePDF(d, map[string]string{}, &buf); err != nil {
		t.Fatalf("generate with empty values: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Error("output is not a PDF document")
	}
}
