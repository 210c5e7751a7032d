package constraints

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// File is a parsed constraints file.
type File struct {
	Directives []*Directive `parser:"@@*"`
}

// Directive is one key=value assignment, e.g. maximum_utilization=70%.
// Everything after the key is optional in the grammar so that an unknown
// keyword is reported as such whatever follows it.
type Directive struct {
	Pos lexer.Position

	Key    string   `parser:"@Ident"`
	Assign bool     `parser:"@Assign?"`
	Value  *float64 `parser:"@Number?"`
	Unit   string   `parser:"@( Percent | \"rows\" )?"`
}
