package parser

import (
	"fmt"
	"strings"

	"varphi/internal/diag"
	"varphi/internal/lexer"
	"varphi/internal/source"
)

func parseSource(input string) (Result, *diag.Bag) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.vp", []byte(input))
	file := fs.Get(id)
	bag := diag.NewBag(1)
	reporter := diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	return ParseFile(file, lx, Options{Reporter: reporter}), bag
}

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}
