package expr

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"deskcalc/internal/domain/types"
)

type parser struct {
	toks []token
	pos  int
}

// Parse builds the AST for input or returns an InvalidExpression error.
func Parse(input string) (Node, error) {
	if strings.TrimSpace(input) == "" {
		return nil, invalid("empty expression", nil)
	}
	toks, err := lex(input)
	if err != nil {
		return nil, invalid(err.Error(), err)
	}
	p := &parser{toks: toks}
	n, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tokEOF {
		return nil, invalid("unexpected "+tok.kind.String()+" at offset "+strconv.Itoa(tok.pos), nil)
	}
	return n, nil
}

func (p *parser) parseExpr() (Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		var op types.Operator
		switch p.peek().kind {
		case tokPlus:
			op = types.OpAdd
		case tokMinus:
			op = types.OpSub
		default:
			return left, nil
		}
		p.next()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: op, Left: left, Right: right}
	}
}

func (p *parser) parseTerm() (Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		var op types.Operator
		switch p.peek().kind {
		case tokStar:
			op = types.OpMul
		case tokSlash:
			op = types.OpDiv
		default:
			return left, nil
		}
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: op, Left: left, Right: right}
	}
}

func (p *parser) parseUnary() (Node, error) {
	switch p.peek().kind {
	case tokMinus:
		p.next()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &Negate{X: x}, nil
	case tokPlus:
		p.next()
		return p.parseUnary()
	}
	return p.parsePostfix()
}

func (p *parser) parsePostfix() (Node, error) {
	tok := p.next()
	if tok.kind != tokNumber {
		return nil, invalid("expected number, got "+tok.kind.String()+" at offset "+strconv.Itoa(tok.pos), nil)
	}
	v, err := strconv.ParseFloat(tok.text, 64)
	switch {
	case errors.Is(err, strconv.ErrRange):
		cause := errors.Wrapf(err, "number %q", tok.text)
		return nil, &types.EvalError{Kind: types.KindOverflow, Msg: cause.Error(), Err: cause}
	case err != nil:
		cause := errors.Wrapf(err, "number %q", tok.text)
		return nil, invalid(cause.Error(), cause)
	}
	var n Node = &Number{Value: v}
	if p.peek().kind == tokPercent {
		p.next()
		n = &Percent{X: n}
	}
	return n, nil
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	tok := p.toks[p.pos]
	if tok.kind != tokEOF {
		p.pos++
	}
	return tok
}

func invalid(msg string, cause error) *types.EvalError {
	return &types.EvalError{Kind: types.KindInvalidExpression, Msg: msg, Err: cause}
}
