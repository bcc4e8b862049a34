package command

import (
	"strings"
)

// Spec represents a user-supplied command after splitting.
// Path is set only by Resolver.ResolveSpec after successful validation.
// Args are literal tokens: they are appended verbatim to the resolved
// path at invocation time and never re-tokenized or shell-expanded.
type Spec struct {
	Name string
	Args []string
	Path string
}

// Split divides a raw command string into its name (first
// whitespace-delimited token) and literal argument tokens.
//
// The split is a plain whitespace split: arguments containing spaces
// cannot be expressed and quoting is not interpreted. Callers depend
// on this literal behavior.
func Split(raw string) (*Spec, error) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return nil, &EmptyTokenError{}
	}
	return &Spec{
		Name: fields[0],
		Args: fields[1:],
	}, nil
}

// Argv returns the full argument vector for invoking the resolved
// command against one file: the literal arguments followed by the file
// path as the final argument.
func (s *Spec) Argv(file string) []string {
	argv := make([]string, 0, len(s.Args)+1)
	argv = append(argv, s.Args...)
	argv = append(argv, file)
	return argv
}
