package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"quran-explorer/internal/contextutil"
	"quran-explorer/internal/service"
	"quran-explorer/internal/storage"
)

// Display modes of the reading view.
const (
	ModeStandard   = "standard"
	ModeReading    = "reading"
	ModeSideBySide = "side-by-side"
)

// ReaderHandler renders one chapter as an HTML reading page.
type ReaderHandler struct {
	suraService  service.SuraService
	verseService service.VerseService
	markdown     goldmark.Markdown
	template     *template.Template
}

type readerPageData struct {
	Title   string
	Mode    string
	Modes   []string
	Number  int
	Prev    int
	Next    int
	Content template.HTML
}

var readerTemplate = template.Must(template.New("reader").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}}</title>
  <style>
    body {
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
      margin: 0 auto;
      padding: 2rem;
      max-width: 900px;
      line-height: 1.8;
    }
    nav {
      display: flex;
      gap: 1rem;
      margin-bottom: 1.5rem;
      font-size: 0.95rem;
    }
    nav a.active {
      font-weight: bold;
    }
    article p[dir="rtl"], .arabic {
      font-size: 2rem;
      text-align: right;
    }
    table {
      width: 100%;
      border-collapse: collapse;
    }
    td, th {
      padding: 0.5rem;
      border-bottom: 1px solid #ddd;
      vertical-align: top;
    }
  </style>
</head>
<body>
  <nav>
    {{if .Prev}}<a href="/read/{{.Prev}}?mode={{.Mode}}">&larr; {{.Prev}}</a>{{end}}
    {{range .Modes}}<a href="/read/{{$.Number}}?mode={{.}}"{{if eq . $.Mode}} class="active"{{end}}>{{.}}</a>{{end}}
    {{if .Next}}<a href="/read/{{.Next}}?mode={{.Mode}}">{{.Next}} &rarr;</a>{{end}}
  </nav>
  <article>{{.Content}}</article>
</body>
</html>`))

// NewReaderHandler creates a new ReaderHandler.
func NewReaderHandler(suraService service.SuraService, verseService service.VerseService) *ReaderHandler {
	return &ReaderHandler{
		suraService:  suraService,
		verseService: verseService,
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.Table),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
		template: readerTemplate,
	}
}

// ServeHTTP handles GET /read/{suraNumber}?mode=.
func (h *ReaderHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	number, err := pathInt(r, "suraNumber")
	if err != nil {
		http.Error(w, "invalid sura number", http.StatusBadRequest)
		return
	}

	mode := r.URL.Query().Get("mode")
	switch mode {
	case "":
		mode = ModeStandard
	case ModeStandard, ModeReading, ModeSideBySide:
	default:
		http.Error(w, "unknown display mode", http.StatusBadRequest)
		return
	}

	sura, err := h.suraService.Get(ctx, number)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	verses, err := h.verseService.ListBySura(ctx, number)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := h.markdown.Convert([]byte(chapterMarkdown(sura, verses, mode)), &buf); err != nil {
		logger.ErrorContext(ctx, "failed to render markdown", "sura", number, "error", err)
		http.Error(w, "failed to render sura", http.StatusInternalServerError)
		return
	}

	data := readerPageData{
		Title:   fmt.Sprintf("%d. %s", sura.Number, sura.NameSimple),
		Mode:    mode,
		Modes:   []string{ModeStandard, ModeReading, ModeSideBySide},
		Number:  sura.Number,
		Prev:    sura.Number - 1,
		Content: template.HTML(buf.String()),
	}
	if _, err := h.suraService.Get(ctx, sura.Number+1); err == nil {
		data.Next = sura.Number + 1
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.template.Execute(w, data); err != nil {
		logger.ErrorContext(ctx, "failed to execute reader template", "sura", number, "error", err)
	}
}

func (h *ReaderHandler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	if errors.Is(err, service.ErrNotFound) {
		http.Error(w, "sura not found", http.StatusNotFound)
		return
	}
	contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to load sura", "error", err)
	http.Error(w, "failed to load sura", http.StatusInternalServerError)
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, "*", `\*`, "_", `\_`, "`", "\\`", "[", `\[`, "]", `\]`,
	"#", `\#`, "|", `\|`, "<", "&lt;", ">", "&gt;",
)

// chapterMarkdown lays out a chapter for the given display mode.
func chapterMarkdown(sura *storage.Sura, verses []storage.Verse, mode string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %d. %s\n\n", sura.Number, markdownEscaper.Replace(sura.NameSimple))
	fmt.Fprintf(&b, "*%s* · %s · %s · %d verses\n\n",
		markdownEscaper.Replace(sura.NameTranslated),
		markdownEscaper.Replace(sura.NameArabic),
		markdownEscaper.Replace(sura.RevelationPlace),
		sura.VerseCount,
	)

	switch mode {
	case ModeReading:
		parts := make([]string, len(verses))
		for i, v := range verses {
			parts[i] = fmt.Sprintf("%s ﴿%d﴾", markdownEscaper.Replace(v.TextAr), v.Aya)
		}
		b.WriteString(strings.Join(parts, " "))
		b.WriteString("\n")
	case ModeSideBySide:
		b.WriteString("| # | Arabic | Français |\n|---|---|---|\n")
		for _, v := range verses {
			fmt.Fprintf(&b, "| %d | %s | %s |\n", v.Aya, markdownEscaper.Replace(v.TextAr), markdownEscaper.Replace(v.TextFr))
		}
	default:
		for _, v := range verses {
			fmt.Fprintf(&b, "### %d:%d\n\n%s\n\n%s\n\n", v.Sura, v.Aya, markdownEscaper.Replace(v.TextAr), markdownEscaper.Replace(v.TextFr))
			if v.TextTl != "" {
				fmt.Fprintf(&b, "_%s_\n\n", markdownEscaper.Replace(v.TextTl))
			}
		}
	}

	return b.String()
}
