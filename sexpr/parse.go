package sexpr

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

func unexpected(s string) error {
	return fmt.Errorf("%w: unexpected token %q", ErrSyntax, s)
}

func isIdent(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '\'' && r != '-' && r != '+' && r != '*'
	}) < 0
}

func validateToken(s string) error {
	switch s {
	case "(", ")", "{", "}", "λ", "\\", ".", "_":
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		return nil
	}
	if strings.HasPrefix(s, "#") {
		if _, err := strconv.Atoi(s[1:]); err != nil {
			return unexpected(s)
		}
		return nil
	}
	if !isIdent(s) {
		return unexpected(s)
	}
	return nil
}

// scan splits src into tokens. String literals are kept whole, quotes
// included, and cannot contain a double quote.
func scan(src string) (res []string, err error) {
	parts := strings.Split(src, `"`)
	if len(parts)%2 == 0 {
		return nil, fmt.Errorf("%w: unterminated string", ErrSyntax)
	}
	for i, part := range parts {
		if i%2 == 1 {
			res = append(res, `"`+part+`"`)
			continue
		}
		res = append(res, strings.Fields(part)...)
	}
	sep := func(c string) []string {
		return lo.FlatMap(res, func(s string, _ int) (ret []string) {
			if strings.HasPrefix(s, `"`) {
				return []string{s}
			}
			for {
				before, after, found := strings.Cut(s, c)
				if before != "" {
					ret = append(ret, before)
				}
				s = after
				if !found {
					break
				}
				ret = append(ret, c)
			}
			return ret
		})
	}
	for _, c := range []string{"(", ")", "{", "}", ".", "λ", "\\"} {
		res = sep(c)
	}
	for _, s := range res {
		if err := validateToken(s); err != nil {
			return nil, err
		}
	}
	return res, nil
}

type parser struct {
	tokens []string
	// ctx holds the parameter names of the enclosing lambdas, innermost
	// first.
	ctx [][]string
}

// Parse reads the λ syntax:
//
//	λx y. body      lambda; the body extends as far right as possible
//	f a b           call of f with arguments a and b
//	42  "text"      runtime literals
//	#42             static literal
//	{f 1 _}         bind of f with its second argument open
//
// A name bound by an enclosing λ becomes a ref, any other name a sym.
func Parse(src string) (any, error) {
	tokens, err := scan(src)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens}
	e, err := p.parse()
	if err != nil {
		return nil, err
	}
	if len(p.tokens) != 0 {
		return nil, fmt.Errorf("%w: expected token \"EOF\", got %q", ErrSyntax, p.tokens[0])
	}
	return e, nil
}

func (p *parser) peek() string {
	if len(p.tokens) == 0 {
		return ""
	}
	return p.tokens[0]
}

func (p *parser) next() (string, error) {
	if len(p.tokens) == 0 {
		return "", unexpected("EOF")
	}
	tok := p.tokens[0]
	p.tokens = p.tokens[1:]
	return tok, nil
}

func (p *parser) expect(tok string) error {
	if len(p.tokens) == 0 {
		return fmt.Errorf("%w: expected token %q, got \"EOF\"", ErrSyntax, tok)
	}
	if hd := p.tokens[0]; hd != tok {
		return fmt.Errorf("%w: expected token %q, got %q", ErrSyntax, tok, hd)
	}
	p.tokens = p.tokens[1:]
	return nil
}

func (p *parser) parseLambda() (any, error) {
	var params []string
	for p.peek() != "." {
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		if !isIdent(tok) || tok == "_" {
			return nil, fmt.Errorf("%w: expected identifier, got %q", ErrSyntax, tok)
		}
		if slices.Contains(params, tok) {
			return nil, fmt.Errorf("%w: duplicate parameter %q", ErrSyntax, tok)
		}
		params = append(params, tok)
	}
	if err := p.expect("."); err != nil {
		return nil, err
	}
	p.ctx = append([][]string{params}, p.ctx...)
	body, err := p.parse()
	p.ctx = p.ctx[1:]
	if err != nil {
		return nil, err
	}
	return New(HeadLambda, len(params), body), nil
}

func (p *parser) parseBind() (any, error) {
	callee, err := p.parseSingle()
	if err != nil {
		return nil, err
	}
	args := []any{callee}
	for p.peek() != "}" {
		if p.peek() == "_" {
			p.tokens = p.tokens[1:]
			args = append(args, New(HeadHole))
			continue
		}
		a, err := p.parseSingle()
		if err != nil {
			return nil, err
		}
		args = append(args, a)
	}
	if err := p.expect("}"); err != nil {
		return nil, err
	}
	return New(HeadBind, args...), nil
}

func (p *parser) resolve(name string) any {
	for hops, params := range p.ctx {
		if i := slices.Index(params, name); i >= 0 {
			return New(HeadRef, hops, i)
		}
	}
	return New(HeadSym, name)
}

func (p *parser) parseSingle() (any, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	switch tok {
	case ")", "}", ".", "_":
		return nil, unexpected(tok)
	case "(":
		e, err := p.parse()
		if err != nil {
			return nil, err
		}
		return e, p.expect(")")
	case "{":
		return p.parseBind()
	case "λ", "\\":
		return p.parseLambda()
	}
	switch {
	case strings.HasPrefix(tok, `"`):
		return tok[1 : len(tok)-1], nil
	case strings.HasPrefix(tok, "#"):
		n, _ := strconv.Atoi(tok[1:])
		return New(HeadStatic, n), nil
	}
	if n, err := strconv.Atoi(tok); err == nil {
		return n, nil
	}
	return p.resolve(tok), nil
}

func (p *parser) parse() (any, error) {
	a, err := p.parseSingle()
	if err != nil {
		return nil, err
	}
	var args []any
	for {
		switch p.peek() {
		case "", ")", "}":
			if len(args) == 0 {
				return a, nil
			}
			return New(HeadCall, append([]any{a}, args...)...), nil
		}
		b, err := p.parseSingle()
		if err != nil {
			return nil, err
		}
		args = append(args, b)
	}
}
