package backend

import (
	"strconv"
	"strings"

	"varphi/internal/machine"
)

// Mermaid renders the program as a stateDiagram-v2. States get generated ids
// (s0, s1, ...) with the Varphi name as the label, so names that clash with
// Mermaid keywords such as "end" stay valid. The current state of the first
// transition is drawn as the initial state.
type Mermaid struct {
	ids   map[string]string
	names []string
	edges []string
}

func (m *Mermaid) Reset() {
	m.ids = make(map[string]string)
	m.names = m.names[:0]
	m.edges = m.edges[:0]
}

func (m *Mermaid) id(state string) string {
	if m.ids == nil {
		m.ids = make(map[string]string)
	}
	if id, ok := m.ids[state]; ok {
		return id
	}
	id := "s" + strconv.Itoa(len(m.names))
	m.ids[state] = id
	m.names = append(m.names, state)
	return id
}

func (m *Mermaid) OnTransition(t machine.Transition) {
	from, to := m.id(t.CurrentState()), m.id(t.NextState())
	label := strings.Join(stringsOf(t.Reads()), ",") + "/" +
		strings.Join(stringsOf(t.Writes()), ",") + " " +
		strings.Join(stringsOf(t.Shifts()), ",")
	m.edges = append(m.edges, "    "+from+" --> "+to+" : "+strings.TrimSpace(label))
}

func (m *Mermaid) Finalize() (Artifact, error) {
	var b strings.Builder
	b.WriteString("stateDiagram-v2\n")
	for i, name := range m.names {
		b.WriteString("    state \"" + mermaidLabel(name) + "\" as s" + strconv.Itoa(i) + "\n")
	}
	if len(m.names) > 0 {
		b.WriteString("    [*] --> s0\n")
	}
	for _, e := range m.edges {
		b.WriteString(e)
		b.WriteByte('\n')
	}
	return []byte(b.String()), nil
}

// mermaidLabel escapes a double quote with Mermaid's entity syntax.
func mermaidLabel(s string) string {
	return strings.ReplaceAll(s, `"`, "#quot;")
}
