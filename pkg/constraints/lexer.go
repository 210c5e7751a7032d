package constraints

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Lexer tokenizes constraints files. Directives are whitespace separated;
// '#' starts a comment running to the end of the line.
var Lexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Whitespace", Pattern: `[\s\t\n\r]+`},

	{Name: "Number", Pattern: `[0-9]+(\.[0-9]+)?`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},

	{Name: "Assign", Pattern: `=`},
	{Name: "Percent", Pattern: `%`},
})
