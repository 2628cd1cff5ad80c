package token_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvlath-bcn/bcn/token"
)

func TestTokenize_BasicExpression(t *testing.T) {
	toks, err := token.Tokenize("x3 & ( x1 | x2) ^ x4")
	require.NoError(t, err)

	lexemes := make([]string, len(toks))
	for i, tok := range toks {
		lexemes[i] = tok.Lexeme
	}
	assert.Equal(t, []string{"x3", "&", "(", "x1", "|", "x2", ")", "^", "x4"}, lexemes)
	assert.Len(t, toks, 9)
}

func TestTokenize_Kinds(t *testing.T) {
	toks, err := token.Tokenize("!x1 & x2")
	require.NoError(t, err)
	require.Len(t, toks, 4)
	assert.Equal(t, token.NOT, toks[0].Kind)
	assert.Equal(t, token.VARIABLE, toks[1].Kind)
	assert.Equal(t, token.AND, toks[2].Kind)
	assert.Equal(t, token.VARIABLE, toks[3].Kind)
}

func TestTokenize_GreedyIdentifiers(t *testing.T) {
	toks, err := token.Tokenize("x12ab3")
	require.NoError(t, err)
	require.Len(t, toks, 1)
	assert.Equal(t, "x12ab3", toks[0].Lexeme)
}

func TestTokenize_WhitespaceSkipped(t *testing.T) {
	toks, err := token.Tokenize("\t x1  \t&\tx2 ")
	require.NoError(t, err)
	require.Len(t, toks, 3)
}

func TestTokenize_IllegalCharacterSurfacesError(t *testing.T) {
	toks, err := token.Tokenize("x1 & @ x2")
	require.Error(t, err)
	assert.True(t, errors.Is(err, token.ErrIllegalChar))

	// Scanning continues past the illegal rune: legal tokens on both sides
	// are still produced.
	lexemes := make([]string, len(toks))
	for i, tok := range toks {
		lexemes[i] = tok.Lexeme
	}
	assert.Equal(t, []string{"x1", "&", "x2"}, lexemes)
}

func TestTokenize_MultipleIllegalCharactersAllReported(t *testing.T) {
	_, err := token.Tokenize("x1 @ x2 # x3")
	require.Error(t, err)

	var joined interface{ Unwrap() []error }
	require.ErrorAs(t, err, &joined)
	assert.Len(t, joined.Unwrap(), 2)
}

func TestTokenize_EmptyExpression(t *testing.T) {
	toks, err := token.Tokenize("")
	require.NoError(t, err)
	assert.Empty(t, toks)
}
