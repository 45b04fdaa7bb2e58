package backend

import (
	"fmt"
	"sort"
	"strings"

	"varphi/internal/compiler"
)

// Artifact is what every built-in backend returns.
type Artifact = []byte

type factory struct {
	ext  string
	desc string
	make func() compiler.Backend[Artifact]
}

var registry = map[string]factory{
	"count":   {ext: "txt", desc: "number of transitions", make: func() compiler.Backend[Artifact] { return &LineCounter{} }},
	"empty":   {ext: "txt", desc: "EMPTY or NOT EMPTY", make: func() compiler.Backend[Artifact] { return &EmptyChecker{} }},
	"states":  {ext: "txt", desc: "sorted unique state names", make: func() compiler.Backend[Artifact] { return &StateLister{} }},
	"json":    {ext: "json", desc: "transition table as JSON", make: func() compiler.Backend[Artifact] { return newTableBackend(encodeJSON) }},
	"yaml":    {ext: "yaml", desc: "transition table as YAML", make: func() compiler.Backend[Artifact] { return newTableBackend(encodeYAML) }},
	"msgpack": {ext: "msgpack", desc: "transition table as MessagePack", make: func() compiler.Backend[Artifact] { return newTableBackend(encodeMsgpack) }},
	"mermaid": {ext: "mmd", desc: "Mermaid state diagram", make: func() compiler.Backend[Artifact] { return &Mermaid{} }},
}

// Names returns the registered backend names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New returns a fresh instance of the named backend.
func New(name string) (compiler.Backend[Artifact], error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown backend %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return f.make(), nil
}

// Extension returns the file extension used for the backend's artifacts.
func Extension(name string) string {
	if f, ok := registry[name]; ok {
		return f.ext
	}
	return "out"
}

// Describe returns a one-line description of the backend.
func Describe(name string) string {
	return registry[name].desc
}
