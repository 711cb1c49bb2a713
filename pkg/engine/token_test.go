package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tokens := Tokenize("Africa  AIRLINES and OR Not")
	require.Equal(t, []Token{
		{Kind: TokenTerm, Term: "africa"},
		{Kind: TokenTerm, Term: "airlines"},
		{Kind: TokenAnd},
		{Kind: TokenOr},
		{Kind: TokenNot},
	}, tokens)

	require.Empty(t, Tokenize("   "))
}

func TestNormalize(t *testing.T) {
	a := normalize(Tokenize("africa airlines AND"))
	b := normalize(Tokenize("  AFRICA   Airlines and "))
	require.Equal(t, a, b)
	require.Equal(t, "africa airlines AND", a)
}
