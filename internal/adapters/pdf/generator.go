// Package pdf generates a one-page VIN build-sheet report: the complete VIN,
// a table of every schema field with its raw code and decoded description,
// colour swatches for the colour-bearing fields, and any special-package
// notes.
package pdf

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/csg33k/vin-decoder/internal/adapters/vin"
	"github.com/csg33k/vin-decoder/internal/adapters/vin/spec"
	"github.com/csg33k/vin-decoder/internal/domain"
)

// GeneratePDF writes the build sheet for a saved decode to w. values is the
// field-value map derived from d.VIN.
func GeneratePDF(d *domain.Decode, values map[string]string, w io.Writer) error {
	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(18, 18, 18)
	pdf.SetAutoPageBreak(true, 18)
	pdf.AddPage()
	drawBuildSheet(pdf, d, values)
	return pdf.Output(w)
}

func drawBuildSheet(pdf *fpdf.Fpdf, d *domain.Decode, values map[string]string) {
	pageW, pageH := pdf.GetPageSize()
	marginL, marginT, _, marginB := pdf.GetMargins()
	contentW := pageW - 2*marginL

	// ── Header bar ───────────────────────────────────────────────────────────
	pdf.SetFillColor(30, 30, 32)
	pdf.Rect(marginL, marginT, contentW, 10, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetXY(marginL+2, marginT+1.5)
	pdf.CellFormat(contentW-4, 7, "MY WINTER CAR  -  VIN BUILD SHEET", "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	y := marginT + 14

	// ── VIN line ─────────────────────────────────────────────────────────────
	pdf.SetFont("Courier", "B", 11)
	pdf.SetXY(marginL, y)
	pdf.CellFormat(contentW, 7, "VIN: "+d.VIN, "1", 1, "C", false, 0, "")
	y += 7
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetXY(marginL, y)
	source := "manual input"
	if d.Source == domain.SourceFile {
		source = "carparts.txt"
	}
	pdf.CellFormat(contentW, 5, "Source: "+source+"   Decoded: "+d.CreatedAt.Format("2006-01-02 15:04"), "", 1, "C", false, 0, "")
	y += 9

	// ── Field table ──────────────────────────────────────────────────────────
	fieldW := contentW * 0.32
	codeW := contentW * 0.14
	descW := contentW - fieldW - codeW

	pdf.SetFillColor(30, 30, 32)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 8.5)
	pdf.SetXY(marginL, y)
	pdf.CellFormat(fieldW, 7, "Field", "1", 0, "L", true, 0, "")
	pdf.CellFormat(codeW, 7, "Code", "1", 0, "C", true, 0, "")
	pdf.CellFormat(descW, 7, "Decoded", "1", 1, "L", true, 0, "")
	y += 7
	pdf.SetTextColor(0, 0, 0)

	rowH := 6.0
	bodyCode := values["ColorsBody"]
	for i, f := range spec.Fields() {
		val := values[f.Key]
		if i%2 == 0 {
			pdf.SetFillColor(247, 247, 247)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		pdf.SetFont("Helvetica", "", 8.5)
		pdf.SetXY(marginL, y)
		pdf.CellFormat(fieldW, rowH, f.Display, "1", 0, "L", true, 0, "")
		pdf.SetFont("Courier", "", 8.5)
		pdf.CellFormat(codeW, rowH, val, "1", 0, "C", true, 0, "")
		pdf.SetFont("Helvetica", "", 8.5)

		if c, ok := vin.SwatchColorWithBody(f.Key, val, bodyCode); ok {
			pdf.CellFormat(descW-10, rowH, vin.Describe(f.Key, val), "LTB", 0, "L", true, 0, "")
			pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
			pdf.CellFormat(10, rowH, "", "RTB", 1, "L", true, 0, "")
		} else {
			pdf.CellFormat(descW, rowH, vin.Describe(f.Key, val), "1", 1, "L", true, 0, "")
		}
		y += rowH
	}

	// ── Package notes ────────────────────────────────────────────────────────
	notes := vin.InfoNotes(values)
	if len(notes) > 0 {
		y += 4
		pdf.SetFont("Helvetica", "I", 8.5)
		for _, n := range notes {
			pdf.SetXY(marginL, y)
			pdf.CellFormat(contentW, 5.5, n, "", 1, "L", false, 0, "")
			y += 5.5
		}
	}

	// ── Footer ───────────────────────────────────────────────────────────────
	pdf.SetXY(marginL, pageH-marginB-6)
	pdf.SetFont("Helvetica", "I", 7.5)
	pdf.SetTextColor(130, 130, 130)
	pdf.CellFormat(contentW/2, 5, "Generated by MWC VIN Decoder", "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW/2, 5, fmt.Sprintf("Decode #%d", d.ID), "", 0, "R", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}
