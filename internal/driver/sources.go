package driver

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SourceExt is the extension of Varphi programs.
const SourceExt = ".vp"

// ListSources возвращает отсортированный список всех *.vp файлов в директории
func ListSources(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(path, SourceExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// ExpandTarget turns a command-line target into a list of files. A directory
// expands to its sources; a file is returned as is, whatever its extension.
// baseDir is the directory diagnostics paths are made relative to.
func ExpandTarget(target string) (files []string, baseDir string, err error) {
	info, err := os.Stat(target)
	if err != nil {
		return nil, "", err
	}
	if !info.IsDir() {
		return []string{target}, filepath.Dir(target), nil
	}
	files, err = ListSources(target)
	return files, target, err
}
