package handlers

import (
	"html/template"
	"net/http"

	"github.com/csg33k/vin-decoder/internal/domain"
)

type indexView struct {
	Decodes   []domain.Decode
	VINLen    int
	VINError  string
	FileError string
}

type fieldRow struct {
	Display string
	Value   string
	Decoded string
	Swatch  string // CSS hex colour, "" when the field has no swatch
}

type detailView struct {
	Decode      *domain.Decode
	Rows        []fieldRow
	Notes       []string
	CompleteVIN string
}

// render writes a template to the response.
func render(w http.ResponseWriter, t *template.Template, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.Execute(w, data); err != nil {
		http.Error(w, err.Error(), 500)
	}
}

const baseHead = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>My Winter Car VIN Decoder</title>
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
<style>
  :root {
    --bg: #1e1e20;
    --panel: #2d2d2f;
    --panel2: #323234;
    --border: #646469;
    --orange: #c87828;
    --text: #e8e8e8;
    --muted: #9a9aa0;
    --err-bg: #501414;
    --err-fg: #ff6464;
  }
  * { box-sizing: border-box; }
  body {
    background: var(--bg);
    color: var(--text);
    font-family: "Segoe UI", system-ui, sans-serif;
    font-size: 14px;
    max-width: 560px;
    margin: 0 auto;
    padding: 12px;
  }
  h1 { font-size: 20px; }
  h2 { font-size: 16px; margin: 0 0 8px 0; }
  .panel {
    background: var(--panel);
    border: 3px solid var(--border);
    border-radius: 2px;
    padding: 12px;
    margin: 8px 0;
  }
  input[type=text] {
    width: 100%;
    background: var(--panel2);
    border: 1px solid var(--border);
    color: var(--text);
    font-family: monospace;
    padding: 6px 8px;
  }
  .btn {
    background: #3c3c41;
    border: 1px solid var(--border);
    color: var(--text);
    padding: 6px 14px;
    cursor: pointer;
  }
  .btn:hover { background: #46464b; }
  .btn-primary { background: var(--orange); border-color: var(--orange); color: #1a1a1a; font-weight: 600; }
  .error {
    background: var(--err-bg);
    color: var(--err-fg);
    border-radius: 4px;
    padding: 8px;
    margin-top: 8px;
  }
  table { width: 100%; border-collapse: collapse; }
  th, td { text-align: left; padding: 4px 8px; }
  tbody tr:nth-child(odd) { background: var(--panel2); }
  .swatch {
    display: inline-block;
    width: 16px; height: 16px;
    border-radius: 3px;
    vertical-align: middle;
    margin-left: 6px;
  }
  .mono { font-family: monospace; }
  .muted { color: var(--muted); }
  .vin-line { text-align: center; font-family: monospace; margin: 12px 0; }
  .note { text-align: center; margin: 4px 0; }
  hr { border: none; border-top: 1px solid var(--border); }
  a { color: var(--orange); }
</style>
</head>
<body>
`

var indexTmpl = template.Must(template.New("index").Parse(baseHead + `
<h1>&#9881; My Winter Car VIN Decoder</h1>

<div class="panel">
  <h2>File Loading</h2>
  <p class="muted">Upload your carparts.txt (AppData\LocalLow\Amistech\My Winter Car\carparts.txt):</p>
  <form method="post" action="/upload" enctype="multipart/form-data">
    <input type="file" name="carparts" required>
    <button class="btn btn-primary" type="submit">Load</button>
  </form>
  {{if .FileError}}<div class="error">{{.FileError}}</div>{{end}}
</div>

<div class="panel">
  <h2>Manual VIN Input</h2>
  <form method="post" action="/decode">
    <input type="text" name="vin" placeholder="Enter VIN code here..." maxlength="{{.VINLen}}">
    <p><button class="btn btn-primary" type="submit">Decode</button></p>
  </form>
  {{if .VINError}}<div class="error">{{.VINError}}</div>{{end}}
</div>

<div class="panel">
  <h2>History</h2>
  {{if .Decodes}}
  <table>
    <thead><tr><th>VIN</th><th>Source</th><th>When</th><th></th></tr></thead>
    <tbody>
      {{range .Decodes}}
      <tr>
        <td class="mono"><a href="/decodes/{{.ID}}">{{.VIN}}</a></td>
        <td>{{.Source}}</td>
        <td class="muted">{{.CreatedAt.Format "2006-01-02 15:04"}}</td>
        <td><button class="btn" hx-delete="/decodes/{{.ID}}" hx-confirm="Delete this decode?">&#10005;</button></td>
      </tr>
      {{end}}
    </tbody>
  </table>
  {{else}}<p class="muted">No decodes yet.</p>{{end}}
</div>
</body>
</html>`))

var detailTmpl = template.Must(template.New("detail").Parse(baseHead + `
<h1>&#9881; VIN Decode</h1>

<div class="panel">
  <table>
    <thead><tr><th>Field</th><th>Value</th><th>Decoded</th></tr></thead>
    <tbody>
      {{range .Rows}}
      <tr>
        <td>{{.Display}}</td>
        <td class="mono">{{.Value}}</td>
        <td>{{.Decoded}}{{if .Swatch}}<span class="swatch" style="background:{{.Swatch}}"></span>{{end}}</td>
      </tr>
      {{end}}
    </tbody>
  </table>
</div>

{{range .Notes}}<p class="note">{{.}}</p>{{end}}

<hr>
<p class="vin-line">Complete VIN: {{.CompleteVIN}}</p>

<p>
  <a class="btn" href="/">&larr; Back</a>
  <a class="btn" href="/decodes/{{.Decode.ID}}/pdf">Build Sheet PDF</a>
  <button class="btn" hx-delete="/decodes/{{.Decode.ID}}" hx-confirm="Delete this decode?">Delete</button>
</p>
</body>
</html>`))
