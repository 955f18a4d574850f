package generator

import (
	"bytes"
	"embed"
	"fmt"
	"go/format"
	"strconv"
	"strings"
	"text/template"

	"github.com/vvka-141/projmeta/internal/metadata"
	"github.com/vvka-141/projmeta/pkg/projmeta"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

var templates = template.Must(
	template.New("").
		Funcs(template.FuncMap{
			"goString": strconv.Quote,
			"ktString": kotlinQuote,
		}).
		ParseFS(templatesFS, "templates/*.tmpl"),
)

type renderData struct {
	FormatVersion int
	Package       string
	Meta          metadata.ProjectMetadata
}

// Render produces the generated file content for meta.
// It does not validate meta; callers run metadata.Validate first.
func Render(lang Language, pkg string, meta metadata.ProjectMetadata) ([]byte, error) {
	var buf bytes.Buffer
	data := renderData{
		FormatVersion: projmeta.FormatVersion,
		Package:       pkg,
		Meta:          meta,
	}
	if err := templates.ExecuteTemplate(&buf, string(lang)+".tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to render %s template: %w", lang, err)
	}

	if lang != LanguageGo {
		return buf.Bytes(), nil
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format generated Go source: %w", err)
	}
	return formatted, nil
}

// kotlinQuote returns s as a double-quoted Kotlin string literal.
func kotlinQuote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '$':
			b.WriteString(`\$`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
