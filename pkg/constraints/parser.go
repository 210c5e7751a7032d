package constraints

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"

	"github.com/OpenTraceLab/OpenTraceDP/pkg/errors"
)

// Recognized directives.
const (
	KeyMaxUtilization = "maximum_utilization"
	KeyMaxMovement    = "maximum_movement"
)

// Parser reads constraints files.
type Parser struct {
	parser *participle.Parser[File]
}

// NewParser creates a new constraints parser instance.
func NewParser() (*Parser, error) {
	parser, err := participle.Build[File](
		participle.Lexer(Lexer),
		participle.Elide("Comment", "Whitespace"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}

	return &Parser{parser: parser}, nil
}

// Parse reads and validates constraints from r.
func (p *Parser) Parse(r io.Reader) (*Constraints, error) {
	file, err := p.parser.Parse("", r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "constraints")
	}
	return fromFile(file)
}

// ParseString reads and validates constraints from input.
func (p *Parser) ParseString(input string) (*Constraints, error) {
	return p.Parse(strings.NewReader(input))
}

// ParseFile reads and validates the constraints file at filename. A file
// that cannot be opened yields a non-fatal FILE_NOT_FOUND error so the
// caller can decide whether to continue without constraints.
func (p *Parser) ParseFile(filename string) (*Constraints, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "cannot open %q for reading", filename)
	}
	defer file.Close()

	return p.Parse(file)
}

var defaultParser *Parser

func init() {
	p, err := NewParser()
	if err != nil {
		panic(err)
	}
	defaultParser = p
}

// Parse reads constraints from r with the default parser.
func Parse(r io.Reader) (*Constraints, error) { return defaultParser.Parse(r) }

// ParseString reads constraints from input with the default parser.
func ParseString(input string) (*Constraints, error) { return defaultParser.ParseString(input) }

// ParseFile reads the constraints file at filename with the default parser.
func ParseFile(filename string) (*Constraints, error) { return defaultParser.ParseFile(filename) }

func fromFile(file *File) (*Constraints, error) {
	c := &Constraints{}
	for _, d := range file.Directives {
		if d.Key != KeyMaxUtilization && d.Key != KeyMaxMovement {
			return nil, errors.New(errors.ErrCodeUnsupportedDirective, "%s: unsupported keyword %q", d.Pos, d.Key)
		}
		if !d.Assign || d.Value == nil {
			return nil, errors.New(errors.ErrCodeParse, "%s: %s expects %s=<value>", d.Pos, d.Key, d.Key)
		}

		switch d.Key {
		case KeyMaxUtilization:
			if d.Unit != "" && d.Unit != "%" {
				return nil, errors.New(errors.ErrCodeParse, "%s: %s expects a percentage, got unit %q", d.Pos, d.Key, d.Unit)
			}
			util := *d.Value
			c.MaxUtilization = &util
		case KeyMaxMovement:
			if d.Unit != "rows" {
				return nil, errors.New(errors.ErrCodeParse, "%s: %s expects a row count, got unit %q", d.Pos, d.Key, d.Unit)
			}
			if *d.Value != math.Trunc(*d.Value) {
				return nil, errors.New(errors.ErrCodeParse, "%s: %s must be a whole number of rows, got %g", d.Pos, d.Key, *d.Value)
			}
			rows := int(*d.Value)
			c.MaxMovement = &rows
		}
	}
	return c, nil
}
