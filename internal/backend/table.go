package backend

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"varphi/internal/machine"
)

// Table is the serializable form of a whole program.
type Table struct {
	Tapes       int      `json:"tapes" yaml:"tapes" msgpack:"tapes"`
	States      []string `json:"states" yaml:"states" msgpack:"states"`
	Transitions []Rule   `json:"transitions" yaml:"transitions" msgpack:"transitions"`
}

// Rule is one transition. Symbols use surface syntax; canonical variables
// are written as $1, $2, ...
type Rule struct {
	Line  uint32   `json:"line" yaml:"line" msgpack:"line"`
	From  string   `json:"from" yaml:"from" msgpack:"from"`
	Read  []string `json:"read" yaml:"read,flow" msgpack:"read"`
	To    string   `json:"to" yaml:"to" msgpack:"to"`
	Write []string `json:"write" yaml:"write,flow" msgpack:"write"`
	Move  []string `json:"move" yaml:"move,flow" msgpack:"move"`
}

// RuleFor converts a transition into its table row.
func RuleFor(t machine.Transition) Rule {
	return Rule{
		Line:  t.Line(),
		From:  t.CurrentState(),
		Read:  stringsOf(t.Reads()),
		To:    t.NextState(),
		Write: stringsOf(t.Writes()),
		Move:  stringsOf(t.Shifts()),
	}
}

func stringsOf[T interface{ String() string }](items []T) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.String()
	}
	return out
}

type encodeFunc func(Table) ([]byte, error)

// tableBackend collects the table and hands it to an encoder on Finalize.
type tableBackend struct {
	encode encodeFunc
	table  Table
	seen   map[string]struct{}
}

func newTableBackend(enc encodeFunc) *tableBackend {
	b := &tableBackend{encode: enc}
	b.Reset()
	return b
}

func (b *tableBackend) Reset() {
	b.table = Table{States: []string{}, Transitions: []Rule{}}
	b.seen = make(map[string]struct{})
}

func (b *tableBackend) OnTransition(t machine.Transition) {
	if len(b.table.Transitions) == 0 {
		b.table.Tapes = t.Arity()
	}
	b.table.Transitions = append(b.table.Transitions, RuleFor(t))
	for _, s := range []string{t.CurrentState(), t.NextState()} {
		if _, ok := b.seen[s]; !ok {
			b.seen[s] = struct{}{}
			b.table.States = append(b.table.States, s)
		}
	}
}

func (b *tableBackend) Finalize() (Artifact, error) {
	t := b.table
	t.States = slices.Clone(t.States)
	slices.Sort(t.States)
	return b.encode(t)
}

func encodeJSON(t Table) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeYAML(t Table) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(t); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeMsgpack(t Table) ([]byte, error) {
	return msgpack.Marshal(t)
}

// DecodeTable reads a table produced by the json, yaml or msgpack backend.
func DecodeTable(format string, data []byte) (Table, error) {
	var t Table
	var err error
	switch format {
	case "json":
		err = json.Unmarshal(data, &t)
	case "yaml":
		err = yaml.Unmarshal(data, &t)
	case "msgpack":
		err = msgpack.Unmarshal(data, &t)
	default:
		return t, fmt.Errorf("backend %q does not produce a transition table", format)
	}
	return t, err
}
