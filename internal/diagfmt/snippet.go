package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"varphi/internal/diag"
	"varphi/internal/source"
)

const gutterWidth = 4

// Snippet is everything needed to show one error against its source line.
type Snippet struct {
	Message string
	// Path is optional; when set it precedes the line on the location row.
	Path string
	// Line is 1-based.
	Line int
	// Column is 0-based, counted in runes.
	Column int
	// Source holds the program split into lines; nil when unavailable.
	Source []string
	// TokenLen is the offending lexeme length in runes; values below 1 mean 1.
	TokenLen int
}

// SnippetFor anchors d in file. A nil file yields a snippet without source.
func SnippetFor(d diag.Diagnostic, file *source.File) Snippet {
	s := Snippet{Message: d.Message, TokenLen: 1}
	if file == nil {
		return s
	}
	pos := file.Position(d.Primary.Start)
	s.Line = int(pos.Line)
	s.Column = int(pos.Column)
	s.Source = file.Lines()
	if n := len([]rune(file.Text(d.Primary))); n > 0 {
		s.TokenLen = n
	}
	return s
}

type palette struct {
	label   *color.Color
	message *color.Color
	gutter  *color.Color
	pointer *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		label:   color.New(color.FgRed, color.Bold),
		message: color.New(color.Bold),
		gutter:  color.New(color.FgBlue),
		pointer: color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{p.label, p.message, p.gutter, p.pointer} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Format renders s. It never fails: when the source line cannot be shown
// only the message and location rows are produced.
func Format(s Snippet, opts RenderOpts) string {
	p := newPalette(opts.Color)
	head := header(s, p)
	body, ok := sourceRows(s, p)
	if !ok {
		return head
	}
	return head + body
}

// Render writes Format(s, opts) to w; only w's own error is returned.
func Render(w io.Writer, s Snippet, opts RenderOpts) error {
	_, err := io.WriteString(w, Format(s, opts))
	return err
}

// Headline renders only the "error: <message>" row, for problems that have
// no source location.
func Headline(message string, opts RenderOpts) string {
	return headline(message, newPalette(opts.Color))
}

func headline(message string, p palette) string {
	return p.label.Sprint("error:") + " " + p.message.Sprint(message) + "\n"
}

func header(s Snippet, p palette) string {
	var b strings.Builder
	b.WriteString(headline(s.Message, p))
	b.WriteString(p.gutter.Sprint("   -->"))
	if s.Path != "" {
		fmt.Fprintf(&b, " %s", s.Path)
	}
	fmt.Fprintf(&b, " line %d:%d\n", s.Line, s.Column+1)
	return b.String()
}

// sourceRows builds the gutter, the source line and the pointer.
func sourceRows(s Snippet, p palette) (out string, ok bool) {
	defer func() {
		if recover() != nil {
			out, ok = "", false
		}
	}()
	if s.Source == nil || s.Line < 1 || s.Line > len(s.Source) {
		return "", false
	}
	line := s.Source[s.Line-1]
	runes := []rune(line)
	col := min(max(s.Column, 0), len(runes))

	var pad strings.Builder
	for _, r := range runes[:col] {
		if r == '\t' {
			pad.WriteByte('\t')
			continue
		}
		pad.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}

	tokenLen := max(s.TokenLen, 1)
	width := tokenLen
	if end := col + tokenLen; end <= len(runes) {
		width = max(runewidth.StringWidth(string(runes[col:end])), 1)
	}

	blank := strings.Repeat(" ", gutterWidth) + " |"
	var b strings.Builder
	b.WriteString(p.gutter.Sprint(blank))
	b.WriteByte('\n')
	b.WriteString(p.gutter.Sprintf("%*d |", gutterWidth, s.Line))
	b.WriteByte(' ')
	b.WriteString(line)
	b.WriteByte('\n')
	b.WriteString(p.gutter.Sprint(blank))
	b.WriteByte(' ')
	b.WriteString(pad.String())
	b.WriteString(p.pointer.Sprint("^" + strings.Repeat("~", width-1)))
	b.WriteByte('\n')
	return b.String(), true
}
