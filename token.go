package pscalc

// TokenKind tells a number literal from an operator name.
type TokenKind int

// Token kinds.
const (
	TokenNumber TokenKind = iota
	TokenName
)

// Token is one element of a tokenized calculator program.
type Token struct {
	Kind   TokenKind
	Number float64
	Name   string
}

// NumberToken returns a literal operand token.
func NumberToken(v float64) Token {
	return Token{Kind: TokenNumber, Number: v}
}

// NameToken returns an operator token.
func NameToken(name string) Token {
	return Token{Kind: TokenName, Name: name}
}

// String implements Stringer.
func (t Token) String() string {
	if t.Kind == TokenNumber {
		return formatNumber(t.Number)
	}
	return t.Name
}
