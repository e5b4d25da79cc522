package checker

import (
	"fmt"
	"strconv"
	"unicode"

	"svw.info/twentyfour/internal/domain"
)

type tokenKind int

const (
	tokNumber tokenKind = iota
	tokOp
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	op   domain.Operator
	num  int
}

var symbolOps = map[rune]domain.Operator{
	'+': domain.OpAdd,
	'-': domain.OpSub,
	'*': domain.OpMul,
	'/': domain.OpDiv,
}

func tokenize(s string) ([]token, error) {
	toks := make([]token, 0, 16)
	runes := []rune(s)
	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case r == '(':
			toks = append(toks, token{kind: tokLParen})
			i++
		case r == ')':
			toks = append(toks, token{kind: tokRParen})
			i++
		case unicode.IsDigit(r):
			j := i
			for j < len(runes) && unicode.IsDigit(runes[j]) {
				j++
			}
			n, err := strconv.Atoi(string(runes[i:j]))
			if err != nil {
				return nil, fmt.Errorf("bad number %q: %w", string(runes[i:j]), err)
			}
			toks = append(toks, token{kind: tokNumber, num: n})
			i = j
		default:
			op, ok := symbolOps[r]
			if !ok {
				return nil, fmt.Errorf("unexpected character %q at offset %d", r, i)
			}
			toks = append(toks, token{kind: tokOp, op: op})
			i++
		}
	}
	if len(toks) == 0 {
		return nil, fmt.Errorf("empty expression")
	}
	return toks, nil
}

type parser struct {
	toks []token
	pos  int
}

// Parse reads an infix expression over + - * / and parentheses into an
// expression tree. Usual precedence, left associative. Unary minus is not
// part of the game's grammar and is rejected.
func Parse(s string) (domain.Expr, error) {
	toks, err := tokenize(s)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.toks) {
		return nil, fmt.Errorf("unexpected trailing input at token %d", p.pos)
	}
	return e, nil
}

func (p *parser) peekOp() (domain.Operator, bool) {
	if p.pos < len(p.toks) && p.toks[p.pos].kind == tokOp {
		return p.toks[p.pos].op, true
	}
	return 0, false
}

// parseExpr handles + and -.
func (p *parser) parseExpr() (domain.Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.peekOp()
		if !ok || (op != domain.OpAdd && op != domain.OpSub) {
			return left, nil
		}
		p.pos++
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = domain.BinaryExpr{Op: op, Left: left, Right: right}
	}
}

// parseTerm handles * and /.
func (p *parser) parseTerm() (domain.Expr, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.peekOp()
		if !ok || (op != domain.OpMul && op != domain.OpDiv) {
			return left, nil
		}
		p.pos++
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = domain.BinaryExpr{Op: op, Left: left, Right: right}
	}
}

// parseFactor handles numbers and parenthesized groups.
func (p *parser) parseFactor() (domain.Expr, error) {
	if p.pos >= len(p.toks) {
		return nil, fmt.Errorf("unexpected end of expression")
	}
	t := p.toks[p.pos]
	switch t.kind {
	case tokNumber:
		p.pos++
		return domain.Leaf{Value: t.num}, nil
	case tokLParen:
		p.pos++
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.pos >= len(p.toks) || p.toks[p.pos].kind != tokRParen {
			return nil, fmt.Errorf("missing closing parenthesis")
		}
		p.pos++
		return e, nil
	default:
		return nil, fmt.Errorf("unexpected token at %d", p.pos)
	}
}
