package handlers

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/csg33k/vin-decoder/internal/domain"
)

const testVIN = "UABBDLCSEEE17BAABAA-N-11---8A"

type memRepo struct {
	nextID  int64
	decodes map[int64]domain.Decode
}

func newMemRepo() *memRepo {
	return &memRepo{nextID: 1, decodes: make(map[int64]domain.Decode)}
}

func (m *memRepo) CreateDecode(_ context.Context, d *domain.Decode) error {
	d.ID = m.nextID
	m.nextID++
	m.decodes[d.ID] = *d
	return nil
}

func (m *memRepo) GetDecode(_ context.Context, id int64) (*domain.Decode, error) {
	d, ok := m.decodes[id]
	if !ok {
		return nil, fmt.Errorf("decode %d not found", id)
	}
	return &d, nil
}

func (m *memRepo) ListDecodes(_ context.Context) ([]domain.Decode, error) {
	out := make([]domain.Decode, 0, len(m.decodes))
	for _, d := range m.decodes {
		out = append(out, d)
	}
	return out, nil
}

func (m *memRepo) DeleteDecode(_ context.Context, id int64) error {
	delete(m.decodes, id)
	return nil
}

func newTestHandler() (*memRepo, http.Handler) {
	repo := newMemRepo()
	return repo, New(repo).Routes()
}

func postForm(h http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestIndex(t *testing.T) {
	repo, h := newTestHandler()
	repo.CreateDecode(context.Background(), &domain.Decode{Source: domain.SourceVIN, VIN: testVIN})

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	if w.Code != 200 {
		t.Fatalf("status = %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, testVIN) {
		t.Error("index does not list the saved decode")
	}
	if !strings.Contains(body, "carparts") {
		t.Error("index is missing the upload form")
	}
}

func TestDecodeVIN_Valid(t *testing.T) {
	repo, h := newTestHandler()
	// Lowercase with spaces: the handler normalizes before validating.
	w := postForm(h, "/decode", url.Values{"vin": {strings.ToLower(testVIN[:10]) + " " + testVIN[10:]}})

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/decodes/1" {
		t.Errorf("Location = %q", loc)
	}
	if repo.decodes[1].VIN != testVIN {
		t.Errorf("saved VIN = %q, want %q", repo.decodes[1].VIN, testVIN)
	}
}

func TestDecodeVIN_BadLength(t *testing.T) {
	repo, h := newTestHandler()
	w := postForm(h, "/decode", url.Values{"vin": {"UABBD"}})

	if w.Code != 200 {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid VIN length: 5 characters") {
		t.Errorf("missing length error, body: %.200s", w.Body.String())
	}
	if len(repo.decodes) != 0 {
		t.Error("invalid VIN was persisted")
	}
}

func TestViewDecode(t *testing.T) {
	repo, h := newTestHandler()
	repo.CreateDecode(context.Background(), &domain.Decode{Source: domain.SourceVIN, VIN: testVIN})

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", "/decodes/1", nil))

	if w.Code != 200 {
		t.Fatalf("status = %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{
		"Corris Britain",      // decoded Country U
		"Standard / None",     // unmapped "-" positions
		"Complete VIN",        // reassembled code line
		testVIN,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("detail page missing %q", want)
		}
	}
}

func TestDeleteDecode(t *testing.T) {
	repo, h := newTestHandler()
	repo.CreateDecode(context.Background(), &domain.Decode{Source: domain.SourceVIN, VIN: testVIN})

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("DELETE", "/decodes/1", nil))

	if w.Code != 200 {
		t.Fatalf("status = %d", w.Code)
	}
	if w.Header().Get("HX-Redirect") != "/" {
		t.Error("missing HX-Redirect header")
	}
	if len(repo.decodes) != 0 {
		t.Error("decode still present after delete")
	}
}

func TestDecodePDF(t *testing.T) {
	repo, h := newTestHandler()
	repo.CreateDecode(context.Background(), &domain.Decode{Source: domain.SourceVIN, VIN: testVIN})

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", "/decodes/1/pdf", nil))

	if w.Code != 200 {
		t.Fatalf("status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Content-Type = %q", ct)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
		t.Error("response is not a PDF document")
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "VIN_"+testVIN) {
		t.Errorf("Content-Disposition = %q", cd)
	}
}

// carpartsFile builds a minimal save file: one foreign entry, then a VINGen4
// dictionary with text keys and values mapping each schema field to one
// character of testVIN.
func carpartsFile(t *testing.T, pairs map[string]string, order []string) []byte {
	t.Helper()
	textVal := func(s string) []byte {
		return append([]byte{byte(len(s))}, s...)
	}
	var body []byte
	body = append(body, 0x52, 0x00)                               // dictionary kind, reserved
	body = binary.LittleEndian.AppendUint32(body, 0xFDE9F1EE)     // text keys
	body = binary.LittleEndian.AppendUint32(body, 0xFDE9F1EE)     // text values
	body = append(body, 0x00, 0x00)                               // property size
	body = binary.LittleEndian.AppendUint32(body, uint32(len(order)))
	for _, k := range order {
		body = append(body, textVal(k)...)
		body = append(body, textVal(pairs[k])...)
	}

	entry := func(tag string, b []byte) []byte {
		e := []byte{0x7E, byte(len(tag))}
		e = append(e, tag...)
		e = binary.LittleEndian.AppendUint32(e, uint32(len(b)))
		return append(e, b...)
	}
	buf := entry("CarSave", []byte{0x01, 0x02, 0x03})
	return append(buf, entry("VINGen4", body)...)
}

func multipartUpload(t *testing.T, content []byte) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("carparts", "carparts.txt")
	if err != nil {
		t.Fatal(err)
	}
	fw.Write(content)
	mw.Close()
	return &buf, mw.FormDataContentType()
}

func TestUploadFile(t *testing.T) {
	repo, h := newTestHandler()

	// Producer writes text values wrapped as string(...); the handler unwraps.
	file := carpartsFile(t, map[string]string{
		"Country": "string(U)",
		"Model":   "string(B)",
		"Serial":  "string(SEEE1)",
	}, []string{"Country", "Model", "Serial"})

	body, contentType := multipartUpload(t, file)
	req := httptest.NewRequest("POST", "/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303, body: %.200s", w.Code, w.Body.String())
	}
	saved := repo.decodes[1]
	if saved.Source != domain.SourceFile {
		t.Errorf("source = %q", saved.Source)
	}
	if !strings.HasPrefix(saved.VIN, "U") || !strings.Contains(saved.VIN, "SEEE1") {
		t.Errorf("reconstructed VIN = %q", saved.VIN)
	}
}

func TestUploadFile_NoRecord(t *testing.T) {
	repo, h := newTestHandler()

	body, contentType := multipartUpload(t, []byte("not a save file"))
	req := httptest.NewRequest("POST", "/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != 200 {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "No VIN data found in file") {
		t.Error("missing not-found message")
	}
	if len(repo.decodes) != 0 {
		t.Error("empty upload was persisted")
	}
}

func TestUnwrapValue(t *testing.T) {
	tests := []struct{ in, want string }{
		{"string(U)", "U"},
		{"string(SEEE1)", "SEEE1"},
		{"plain", "plain"},
		{"string(", "string("},
		{"", ""},
	}
	for _, tt := range tests {
		if got := unwrapValue(tt.in); got != tt.want {
			t.Errorf("unwrapValue(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
