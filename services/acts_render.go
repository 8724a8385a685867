package services

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
)

// campoRegex matches {{campo}} placeholders in act plantillas
var campoRegex = regexp.MustCompile(`\{\{([a-zA-Z0-9_]+)\}\}`)

var mesesES = []string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// FechaLarga formats a date the way Dominican legal acts spell it out
func FechaLarga(t time.Time) string {
	return fmt.Sprintf("%d días del mes de %s del año %d", t.Day(), mesesES[t.Month()-1], t.Year())
}

// RenderActo fills an act plantilla with the submitted field values plus the
// built-in fecha/fecha_larga/anio variables, and appends the shared clauses
// when the bundle is flagged for them. Placeholders without a value are left
// in place so the reviewing lawyer can spot them. Returns "" for unknown slugs.
func RenderActo(slug string, values map[string]string) string {
	acto := GetActoBySlug(slug)
	if acto == nil {
		return ""
	}

	now := time.Now()
	builtins := map[string]string{
		"fecha":       now.Format(ISODateLayout),
		"fecha_larga": FechaLarga(now),
		"anio":        fmt.Sprintf("%d", now.Year()),
	}

	rendered := campoRegex.ReplaceAllStringFunc(acto.Plantilla, func(match string) string {
		key := strings.TrimPrefix(strings.TrimSuffix(match, "}}"), "{{")

		if value, ok := values[key]; ok && value != "" {
			return value
		}
		if value, ok := builtins[key]; ok {
			return value
		}
		return match
	})

	if acto.IncluirClausulasGlobales {
		rendered = rendered + "\n" + GetGlobalClausesText()
	}

	return rendered
}

// RenderActoHTML renders an act and converts it to sanitized HTML ready for
// the PDF pipeline. Field values are user input, so the output goes through
// the same UGC sanitization policy applied to uploaded templates.
func RenderActoHTML(slug string, values map[string]string) string {
	rendered := RenderActo(slug, values)
	if rendered == "" {
		return ""
	}

	html := actoToHTML(rendered)

	p := bluemonday.UGCPolicy()
	return p.Sanitize(html)
}

var boldRegex = regexp.MustCompile(`\*\*([^*]+)\*\*`)

// actoToHTML converts the constrained plantilla markup (headings, bold,
// paragraphs) to HTML. The catalog only ever uses these three constructs.
func actoToHTML(text string) string {
	var b strings.Builder

	for _, block := range strings.Split(text, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}

		switch {
		case strings.HasPrefix(block, "## "):
			b.WriteString("<h2>" + strings.TrimPrefix(block, "## ") + "</h2>\n")
		case strings.HasPrefix(block, "# "):
			b.WriteString("<h1>" + strings.TrimPrefix(block, "# ") + "</h1>\n")
		default:
			block = strings.ReplaceAll(block, "\n", "<br>")
			b.WriteString("<p>" + block + "</p>\n")
		}
	}

	return boldRegex.ReplaceAllString(b.String(), "<strong>$1</strong>")
}

// WrapHTMLForPDF wraps rendered act HTML with legal document styles for PDF generation
func WrapHTMLForPDF(content string) string {
	return `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        @page {
            margin: 1in;
        }
        body {
            font-family: "Times New Roman", Times, serif;
            font-size: 12pt;
            line-height: 1.5;
            color: #000;
            text-align: justify;
        }
        h1 {
            font-size: 16pt;
            font-weight: bold;
            text-align: center;
            margin-bottom: 24pt;
        }
        h2 {
            font-size: 14pt;
            font-weight: bold;
            margin-top: 18pt;
            margin-bottom: 12pt;
        }
        p {
            margin-bottom: 12pt;
        }
        .signature-block {
            margin-top: 48pt;
        }
        .signature-line {
            border-top: 1px solid #000;
            width: 3in;
            margin-top: 36pt;
            padding-top: 6pt;
        }
    </style>
</head>
<body>
` + content + `
</body>
</html>`
}
