package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxFuzzInput = 1 << 16 // 64 KiB
	maxSeedBytes = 64 << 10
)

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	addLanguageSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.vp файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".vp" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func addLanguageSeeds(f *testing.F) {
	for _, s := range []string{
		"",
		"q0 (a) q1 (b) (LEFT)\n",
		"q0 () q1 () ()\n",
		"LEFT (BLANK) RIGHT (*) (STAY)\n",
		"q0 ($x, $y) q1 ($y, $x) (LEFT, RIGHT)\n",
		"q0 ($x) q1 ($y) (LEFT)\n",
		"q0 (a) q1 (b) (LEFT)\nq1 (a, b) q2 (b, a) (LEFT, LEFT)\n",
		"q0 (a, b) q1 (b) (LEFT)\n",
		"q0 (ab) q1 (b) (LEFT)\n",
		"q0 (a q1 (b) (LEFT)\n",
		"/* unterminated",
		"q0 (\x00) q1 (é) (LEFT)\r\n",
		"\xef\xbb\xbfq0 (a) q1 (b) (UP)\n",
	} {
		f.Add([]byte(s))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) > maxSeedBytes {
		src = src[:maxSeedBytes]
	}
	return append([]byte(nil), src...)
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		input = input[:maxFuzzInput]
	}
	return append([]byte(nil), input...)
}
