// Package backend holds the built-in consumers of compiled transitions.
//
// Every backend produces a []byte artifact and is looked up by name:
//
//	b, err := backend.New("json")
//	out, err := compiler.New(b, compiler.Options{}).Compile(ctx, name, src)
package backend
