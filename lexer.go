package pscalc

import "strconv"

type lexer struct {
	source []byte
	offset int
	start  int
	token  string
	number float64
}

func newLexer(src string) *lexer {
	return &lexer{source: []byte(src)}
}

const eof = -1

const (
	tokNumber = iota + 256
	tokIdent
	tokInvalid
)

func (l *lexer) Lex() int {
	l.skipWhite()
	l.start, l.token = l.offset, ""
	if len(l.source) == l.offset {
		return eof
	}
	ch := l.source[l.offset]
	l.offset++
	switch {
	case isIdent(ch, false):
		l.token = string(l.source[l.start:l.scanIdent()])
		return tokIdent
	case isNumber(ch), ch == '.', ch == '-', ch == '+':
		state := numberStateLead
		if ch == '.' {
			state = numberStateFloat
		}
		j := l.scanNumber(state)
		if j < 0 {
			l.token = string(l.source[l.start:-j])
			return tokInvalid
		}
		l.token = string(l.source[l.start:j])
		v, err := strconv.ParseFloat(l.token, 64)
		if err != nil {
			return tokInvalid
		}
		l.number = v
		return tokNumber
	case ch == '{', ch == '}':
		l.token = string(ch)
		return int(ch)
	default:
		l.token = string(ch)
		return tokInvalid
	}
}

func (l *lexer) skipWhite() {
	for l.offset < len(l.source) {
		ch := l.source[l.offset]
		if ch == '%' {
			for l.offset < len(l.source) && !isNewline(l.source[l.offset]) {
				l.offset++
			}
			continue
		}
		if !isWhite(ch) {
			return
		}
		l.offset++
	}
}

func (l *lexer) peek() byte {
	if len(l.source) == l.offset {
		return 0
	}
	return l.source[l.offset]
}

func (l *lexer) scanIdent() int {
	for isIdent(l.peek(), true) {
		l.offset++
	}
	return l.offset
}

const (
	numberStateLead = iota
	numberStateFloat
	numberStateExpLead
	numberStateExp
)

func (l *lexer) scanNumber(state int) int {
	for {
		switch state {
		case numberStateLead, numberStateFloat:
			if ch := l.peek(); isNumber(ch) {
				l.offset++
			} else {
				switch ch {
				case '.':
					if state != numberStateLead {
						return l.scanInvalid()
					}
					l.offset++
					state = numberStateFloat
				case 'e', 'E':
					l.offset++
					switch l.peek() {
					case '-', '+':
						l.offset++
					}
					state = numberStateExpLead
				case '-', '+':
					return l.scanInvalid()
				default:
					if isIdent(ch, false) {
						return l.scanInvalid()
					}
					return l.offset
				}
			}
		case numberStateExpLead, numberStateExp:
			if ch := l.peek(); !isNumber(ch) {
				if isIdent(ch, false) || ch == '.' || ch == '-' || ch == '+' {
					return l.scanInvalid()
				}
				if state == numberStateExpLead {
					return -l.offset
				}
				return l.offset
			}
			l.offset++
			state = numberStateExp
		default:
			panic(state)
		}
	}
}

// scanInvalid consumes the rest of a malformed number, so that 1.5.3 or 1-2
// is reported as one token.
func (l *lexer) scanInvalid() int {
	for ch := l.peek(); !isWhite(ch) && ch != '{' && ch != '}' && ch != '%'; ch = l.peek() {
		l.offset++
	}
	return -l.offset
}

func isWhite(ch byte) bool {
	switch ch {
	case '\t', '\n', '\r', ' ', '\f', 0:
		return true
	default:
		return false
	}
}

func isNewline(ch byte) bool {
	return ch == '\n' || ch == '\r'
}

func isIdent(ch byte, tail bool) bool {
	return 'a' <= ch && ch <= 'z' ||
		'A' <= ch && ch <= 'Z' || ch == '_' ||
		tail && (isNumber(ch) || ch == '-')
}

func isNumber(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
