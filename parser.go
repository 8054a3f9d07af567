package pscalc

type parser struct {
	lexer  *lexer
	tokens []Token
}

// Parse parses the text of a calculator function, a single { } block, into
// the flat token sequence the compiler consumes. Nested blocks followed by if
// or ifelse are lowered to jz and j with absolute token indices as targets.
func Parse(src string) ([]Token, error) {
	p := &parser{lexer: newLexer(src)}
	if tok := p.lexer.Lex(); tok != '{' {
		return nil, p.error(tok, "expected {")
	}
	if err := p.parseBlock(); err != nil {
		return nil, err
	}
	if tok := p.lexer.Lex(); tok != eof {
		return nil, p.error(tok, "expected end of program")
	}
	return p.tokens, nil
}

// parseBlock parses the body of a block whose { was already consumed, up to
// and including the closing }.
func (p *parser) parseBlock() error {
	for {
		switch tok := p.lexer.Lex(); tok {
		case tokNumber:
			p.append(NumberToken(p.lexer.number))
		case tokIdent:
			if name := p.lexer.token; name == "if" || name == "ifelse" {
				return p.error(tok, "expected a block before "+name)
			}
			p.append(NameToken(p.lexer.token))
		case '{':
			if err := p.parseCondition(); err != nil {
				return err
			}
		case '}':
			return nil
		case eof:
			return p.error(tok, "expected }")
		default:
			return p.error(tok, "invalid token")
		}
	}
}

// parseCondition handles "{ T } if" and "{ T } { F } ifelse".
func (p *parser) parseCondition() error {
	cond := p.placeholder()
	if err := p.parseBlock(); err != nil {
		return err
	}
	switch tok := p.lexer.Lex(); tok {
	case tokIdent:
		if p.lexer.token != "if" {
			return p.error(tok, "expected if or ifelse")
		}
		p.patch(cond, len(p.tokens), "jz")
		return nil
	case '{':
		jump := p.placeholder()
		endOfTrue := len(p.tokens)
		if err := p.parseBlock(); err != nil {
			return err
		}
		if tok := p.lexer.Lex(); tok != tokIdent || p.lexer.token != "ifelse" {
			return p.error(tok, "expected ifelse")
		}
		p.patch(jump, len(p.tokens), "j")
		p.patch(cond, endOfTrue, "jz")
		return nil
	default:
		return p.error(tok, "expected if or ifelse")
	}
}

func (p *parser) append(t Token) {
	p.tokens = append(p.tokens, t)
}

func (p *parser) placeholder() int {
	i := len(p.tokens)
	p.tokens = append(p.tokens, Token{}, Token{})
	return i
}

func (p *parser) patch(i, target int, op string) {
	p.tokens[i] = NumberToken(float64(target))
	p.tokens[i+1] = NameToken(op)
}

func (p *parser) error(tok int, message string) error {
	var token string
	if tok != eof {
		token = p.lexer.token
	}
	return &ParseError{Offset: p.lexer.start, Token: token, Message: message}
}
