package source

type (
	// FileID identifies a source file inside a FileSet.
	FileID uint32
	// FileFlags records how a file's content was obtained and normalized.
	FileFlags uint8
)

const (
	// FileVirtual marks content that did not come from disk (tests, stdin).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
	FileNormalizedNFC
)

// File holds the content of one Varphi program together with its line index.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32 // offsets of '\n'
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol is a 1-based line and 1-based byte column.
type LineCol struct {
	Line uint32
	Col  uint32
}

// Position is a 1-based line and 0-based rune column, the shape diagnostics use.
type Position struct {
	Line   uint32
	Column uint32
}
