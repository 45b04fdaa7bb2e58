package diagfmt

import (
	"fmt"
	"io"

	"varphi/internal/diag"
	"varphi/internal/source"
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает сниппет с подчёркиванием ^~~~ по Span,
// затем Notes строкой "= note:". Между диагностиками пустая строка.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) error {
	if bag == nil {
		return nil
	}
	p := newPalette(opts.Color)
	for i, d := range bag.Items() {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		file := fs.Get(d.Primary.File)
		s := SnippetFor(d, file)
		if file != nil {
			s.Path = formatPath(file, fs, opts.PathMode)
		}
		if err := Render(w, s, RenderOpts{Color: opts.Color}); err != nil {
			return err
		}
		if !opts.ShowNotes {
			continue
		}
		for _, note := range d.Notes {
			loc := ""
			if nf := fs.Get(note.Span.File); nf != nil {
				pos := nf.Position(note.Span.Start)
				loc = fmt.Sprintf(" (line %d:%d)", pos.Line, pos.Column+1)
			}
			if _, err := fmt.Fprintf(w, "%s %s%s\n", p.gutter.Sprint("     = note:"), note.Msg, loc); err != nil {
				return err
			}
		}
	}
	return nil
}

func formatPath(f *source.File, fs *source.FileSet, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		return f.FormatPath("basename", "")
	default:
		return f.FormatPath("auto", "")
	}
}
