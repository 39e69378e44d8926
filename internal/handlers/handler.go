package handlers

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/csg33k/vin-decoder/internal/adapters/pdf"
	"github.com/csg33k/vin-decoder/internal/adapters/vin"
	"github.com/csg33k/vin-decoder/internal/adapters/vin/spec"
	"github.com/csg33k/vin-decoder/internal/adapters/vingen"
	"github.com/csg33k/vin-decoder/internal/domain"
	"github.com/csg33k/vin-decoder/internal/ports"
)

// maxUploadBytes caps carparts.txt uploads; real save files are a few KB.
const maxUploadBytes = 16 << 20

type Handler struct {
	repo ports.DecodeRepository
}

func New(repo ports.DecodeRepository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /", h.index)
	mux.HandleFunc("POST /decode", h.decodeVIN)
	mux.HandleFunc("POST /upload", h.uploadFile)
	mux.HandleFunc("GET /decodes/{id}", h.viewDecode)
	mux.HandleFunc("DELETE /decodes/{id}", h.deleteDecode)
	mux.HandleFunc("GET /decodes/{id}/pdf", h.decodePDF)
	return mux
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	h.renderIndex(w, r, "", "")
}

func (h *Handler) renderIndex(w http.ResponseWriter, r *http.Request, vinError, fileError string) {
	decodes, err := h.repo.ListDecodes(r.Context())
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	render(w, indexTmpl, indexView{
		Decodes:   decodes,
		VINLen:    spec.TotalLen(),
		VINError:  vinError,
		FileError: fileError,
	})
}

// decodeVIN handles a pasted VIN code. Input is normalized (trimmed, spaces
// stripped, uppercased) and validated against the schema's total width before
// the decoder runs — the decoder itself never rejects input.
func (h *Handler) decodeVIN(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	code := vin.Normalize(r.FormValue("vin"))
	if len(code) != spec.TotalLen() {
		h.renderIndex(w, r,
			fmt.Sprintf("Invalid VIN length: %d characters (expected %d)", len(code), spec.TotalLen()), "")
		return
	}
	d := &domain.Decode{Source: domain.SourceVIN, VIN: code}
	if err := h.repo.CreateDecode(r.Context(), d); err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	http.Redirect(w, r, fmt.Sprintf("/decodes/%d", d.ID), http.StatusSeeOther)
}

// uploadFile handles a carparts.txt upload: locate the VINGen4 record, decode
// its dictionary, and save the reconstructed complete VIN.
func (h *Handler) uploadFile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, _, err := r.FormFile("carparts")
	if err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, err.Error(), 400)
		return
	}

	pairs, ok := vingen.Parse(data)
	if !ok {
		h.renderIndex(w, r, "", "No VIN data found in file")
		return
	}
	values := make(map[string]string, len(pairs))
	for _, p := range pairs {
		values[p.Key] = unwrapValue(p.Value)
	}
	d := &domain.Decode{Source: domain.SourceFile, VIN: vin.Complete(values)}
	if err := h.repo.CreateDecode(r.Context(), d); err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	http.Redirect(w, r, fmt.Sprintf("/decodes/%d", d.ID), http.StatusSeeOther)
}

func (h *Handler) viewDecode(w http.ResponseWriter, r *http.Request) {
	d, ok := h.fetchDecode(w, r)
	if !ok {
		return
	}
	render(w, detailTmpl, buildDetailView(d))
}

func (h *Handler) deleteDecode(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "invalid id", 400)
		return
	}
	if err := h.repo.DeleteDecode(r.Context(), id); err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	w.Header().Set("HX-Redirect", "/")
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) decodePDF(w http.ResponseWriter, r *http.Request) {
	d, ok := h.fetchDecode(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := pdf.GeneratePDF(d, vin.Decode(d.VIN), &buf); err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	filename := fmt.Sprintf("VIN_%s_%s.pdf", d.VIN, time.Now().Format("20060102"))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Write(buf.Bytes())
}

func (h *Handler) fetchDecode(w http.ResponseWriter, r *http.Request) (*domain.Decode, bool) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "invalid id", 400)
		return nil, false
	}
	d, err := h.repo.GetDecode(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return nil, false
	}
	return d, true
}

// buildDetailView resolves a saved decode into renderable rows: display name,
// raw code, decoded description, and an optional colour swatch with the
// paint-matches-body rule applied.
func buildDetailView(d *domain.Decode) detailView {
	values := vin.Decode(d.VIN)
	bodyCode := values["ColorsBody"]
	rows := make([]fieldRow, 0, len(spec.Fields()))
	for _, f := range spec.Fields() {
		val := values[f.Key]
		row := fieldRow{
			Display: f.Display,
			Value:   val,
			Decoded: vin.Describe(f.Key, val),
		}
		if c, ok := vin.SwatchColorWithBody(f.Key, val, bodyCode); ok {
			row.Swatch = c.Hex()
		}
		rows = append(rows, row)
	}
	return detailView{
		Decode:      d,
		Rows:        rows,
		Notes:       vin.InfoNotes(values),
		CompleteVIN: vin.Complete(values),
	}
}

// unwrapValue strips the producer's string(...) wrapper from binary text
// values before presentation.
func unwrapValue(v string) string {
	if strings.HasPrefix(v, "string(") && strings.HasSuffix(v, ")") {
		return v[len("string(") : len(v)-1]
	}
	return v
}

func pathID(r *http.Request, key string) (int64, error) {
	return strconv.ParseInt(r.PathValue(key), 10, 64)
}
