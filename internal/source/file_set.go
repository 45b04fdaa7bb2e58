package source

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"fortio.org/safecast"
)

// FileSet owns every source file seen by one compilation and resolves spans
// back to lines and columns. A FileSet is not safe for concurrent use.
type FileSet struct {
	files   []File
	index   map[string]FileID // normalized path -> latest id
	baseDir string            // для относительных путей в диагностике
}

// NewFileSet creates an empty FileSet.
func NewFileSet() *FileSet {
	return NewFileSetWithBase("")
}

// NewFileSetWithBase creates an empty FileSet whose relative paths are
// computed against baseDir.
func NewFileSetWithBase(baseDir string) *FileSet {
	return &FileSet{
		files:   make([]File, 0, 4),
		index:   make(map[string]FileID),
		baseDir: baseDir,
	}
}

// BaseDir returns the configured base directory or the working directory.
func (fileSet *FileSet) BaseDir() string {
	if fileSet.baseDir == "" {
		if wd, err := os.Getwd(); err == nil {
			return wd
		}
	}
	return fileSet.baseDir
}

// Add registers already normalized content under path and returns a fresh
// FileID. Adding the same path twice yields two ids; GetLatest returns the
// newer one.
func (fileSet *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	n, err := safecast.Conv[uint32](len(fileSet.files))
	if err != nil {
		panic(fmt.Errorf("file count overflow: %w", err))
	}
	id := FileID(n)
	normalized := normalizePath(path)
	fileSet.files = append(fileSet.files, File{
		ID:      id,
		Path:    normalized,
		Content: content,
		LineIdx: buildLineIndex(content),
		Hash:    sha256.Sum256(content),
		Flags:   flags,
	})
	fileSet.index[normalized] = id
	return id
}

// Load reads path from disk, normalizes it and adds it to the set.
func (fileSet *FileSet) Load(path string) (FileID, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	content, flags := normalizeContent(content)
	return fileSet.Add(path, content, flags), nil
}

// AddVirtual registers in-memory content (tests, stdin). The content goes
// through the same normalization as Load.
func (fileSet *FileSet) AddVirtual(name string, content []byte) FileID {
	content, flags := normalizeContent(content)
	return fileSet.Add(name, content, flags|FileVirtual)
}

// Get returns the file with the given id, or nil when the id is unknown.
func (fileSet *FileSet) Get(id FileID) *File {
	if int(id) >= len(fileSet.files) {
		return nil
	}
	return &fileSet.files[id]
}

// Len reports how many files were added.
func (fileSet *FileSet) Len() int {
	return len(fileSet.files)
}

// GetLatest returns the newest id registered for path.
func (fileSet *FileSet) GetLatest(path string) (FileID, bool) {
	id, ok := fileSet.index[normalizePath(path)]
	return id, ok
}

// Resolve converts a span into 1-based line and byte-column positions.
func (fileSet *FileSet) Resolve(span Span) (start, end LineCol) {
	f := fileSet.Get(span.File)
	if f == nil {
		return LineCol{}, LineCol{}
	}
	return toLineCol(f.LineIdx, span.Start), toLineCol(f.LineIdx, span.End)
}

// Position converts a byte offset into a 1-based line and a 0-based rune
// column. Offsets past the end clamp to the end of the content.
func (f *File) Position(off uint32) Position {
	n, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("content length overflow: %w", err))
	}
	off = min(off, n)
	lc := toLineCol(f.LineIdx, off)
	lineStart := off - (lc.Col - 1)
	col, err := safecast.Conv[uint32](utf8.RuneCount(f.Content[lineStart:off]))
	if err != nil {
		panic(fmt.Errorf("column overflow: %w", err))
	}
	return Position{Line: lc.Line, Column: col}
}

// LineCount returns the number of lines; a trailing newline does not start
// a new line.
func (f *File) LineCount() int {
	if len(f.Content) == 0 {
		return 0
	}
	n := len(f.LineIdx)
	if f.Content[len(f.Content)-1] != '\n' {
		n++
	}
	return n
}

// Lines splits the content into lines without newline characters.
func (f *File) Lines() []string {
	if len(f.Content) == 0 {
		return nil
	}
	text := strings.TrimSuffix(string(f.Content), "\n")
	return strings.Split(text, "\n")
}

// Text returns the source text covered by span, or "" when the span does
// not fit the file.
func (f *File) Text(span Span) string {
	if span.End < span.Start || int(span.End) > len(f.Content) {
		return ""
	}
	return string(f.Content[span.Start:span.End])
}

// FormatPath formats the path according to mode:
// "absolute", "relative", "basename" or "auto".
func (f *File) FormatPath(mode, baseDir string) string {
	switch mode {
	case "absolute":
		if abs, err := AbsolutePath(f.Path); err == nil {
			return abs
		}
		return f.Path
	case "relative":
		if baseDir == "" {
			if wd, err := os.Getwd(); err == nil {
				baseDir = wd
			}
		}
		if rel, err := RelativePath(f.Path, baseDir); err == nil {
			return rel
		}
		return f.Path
	case "basename":
		return BaseName(f.Path)
	case "auto":
		if len(f.Path) < 40 || !filepath.IsAbs(f.Path) {
			return f.Path
		}
		return BaseName(f.Path)
	default:
		return f.Path
	}
}
