package engine

import "strings"

type TokenKind int

const (
	TokenTerm TokenKind = iota
	TokenAnd
	TokenOr
	TokenNot
)

// Token is one RPN query token, classified once during scanning so the
// evaluator never re-compares operator strings.
type Token struct {
	Kind TokenKind
	Term string // set for TokenTerm only
}

// Tokenize splits one query line into classified tokens. Operators are
// case-insensitive; term operands are case-folded to match the
// case-insensitive index.
func Tokenize(query string) []Token {
	tokens := []Token{}
	for _, field := range strings.Fields(query) {
		switch strings.ToLower(field) {
		case "and":
			tokens = append(tokens, Token{Kind: TokenAnd})
		case "or":
			tokens = append(tokens, Token{Kind: TokenOr})
		case "not":
			tokens = append(tokens, Token{Kind: TokenNot})
		default:
			tokens = append(tokens, Token{Kind: TokenTerm, Term: strings.ToLower(field)})
		}
	}
	return tokens
}

func (t Token) display() string {
	switch t.Kind {
	case TokenAnd:
		return "AND"
	case TokenOr:
		return "OR"
	case TokenNot:
		return "NOT"
	default:
		return t.Term
	}
}
