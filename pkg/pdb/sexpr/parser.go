package sexpr

import (
	"fmt"
	"io"
)

// Parser builds nodes from a token stream.
type Parser struct {
	lexer   *Lexer
	current Token
}

// NewParser creates a new parser from an io.Reader
func NewParser(r io.Reader) *Parser {
	return &Parser{lexer: NewLexer(r)}
}

// ParseAll parses all top-level S-expressions from the input
func (p *Parser) ParseAll() ([]Node, error) {
	var result []Node

	if err := p.advance(); err != nil {
		return nil, err
	}
	for p.current.Type != TokenEOF {
		node, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		result = append(result, node)
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (p *Parser) advance() error {
	tok, err := p.lexer.NextToken()
	if err != nil {
		return err
	}
	p.current = tok
	return nil
}

func (p *Parser) parseNode() (Node, error) {
	switch p.current.Type {
	case TokenLeftParen:
		return p.parseList()
	case TokenAtom:
		return Atom(p.current.Value), nil
	case TokenRightParen:
		return nil, fmt.Errorf("line %d: unexpected ')'", p.current.Line)
	default:
		return nil, fmt.Errorf("line %d: unexpected EOF", p.current.Line)
	}
}

func (p *Parser) parseList() (Node, error) {
	list := &List{Line: p.current.Line}
	for {
		if err := p.advance(); err != nil {
			return nil, err
		}
		switch p.current.Type {
		case TokenRightParen:
			return list, nil
		case TokenEOF:
			return nil, fmt.Errorf("line %d: unexpected EOF in list", list.Line)
		}
		item, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		list.Items = append(list.Items, item)
	}
}
