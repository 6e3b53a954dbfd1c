package view

import (
	"embed"
	"encoding/json"
	"html/template"
	"strconv"
	"time"
)

//go:embed templates/*.html
var files embed.FS

var funcMap = template.FuncMap{
	// Dates render the way they are entered on the forms.
	"date":     func(t time.Time) string { return t.Format("2006-01-02") },
	"datetime": func(t time.Time) string { return t.Format("2006-01-02 15:04") },
	"num":      func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) },
	// Chart series are inlined as JSON for the chart script.
	"json": func(v any) template.JS {
		b, err := json.Marshal(v)
		if err != nil {
			return template.JS("null")
		}
		return template.JS(b)
	},
}

// Templates parses every embedded page template. Pages are looked up by
// file name (e.g. "sleep.html").
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(funcMap).ParseFS(files, "templates/*.html"))
}
