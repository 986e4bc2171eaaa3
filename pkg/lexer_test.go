package holyc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lexOK(t *testing.T, src string) []Token {
	t.Helper()
	toks, err := Lex([]byte(src), "test.hc", NopSink{})
	require.NoError(t, err)
	return toks
}

func kinds(toks []Token) []TokenKind {
	out := make([]TokenKind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func TestLexerPunctuationAndOperators(t *testing.T) {
	cases := []struct {
		data   string
		expect []TokenKind
	}{
		{"+", []TokenKind{ADD, EOF}},
		{"++", []TokenKind{INC, EOF}},
		{"+=", []TokenKind{ADDEQ, EOF}},
		{"-", []TokenKind{SUB, EOF}},
		{"--", []TokenKind{DEC, EOF}},
		{"-=", []TokenKind{SUBEQ, EOF}},
		{"->", []TokenKind{ARROW, EOF}},
		{"<<=", []TokenKind{LSHEQ, EOF}},
		{"<<", []TokenKind{LSH, EOF}},
		{"<=", []TokenKind{LTE, EOF}},
		{"<", []TokenKind{LT, EOF}},
		{">>=", []TokenKind{RSHEQ, EOF}},
		{"...", []TokenKind{ELLIPSIS, EOF}},
		{"..", []TokenKind{DOT, DOT, EOF}},
		{".", []TokenKind{DOT, EOF}},
		{"&&", []TokenKind{AND, EOF}},
		{"&=", []TokenKind{ANDEQ, EOF}},
		{"&", []TokenKind{BAND, EOF}},
		{"^^", []TokenKind{XOR, EOF}},
		{"^", []TokenKind{BXOR, EOF}},
		{"`", []TokenKind{POW, EOF}},
		{"!=", []TokenKind{NEQ, EOF}},
		{"!", []TokenKind{NOT, EOF}},
		{"==", []TokenKind{EQ, EOF}},
		{"=", []TokenKind{ASSIGN, EOF}},
	}

	for _, c := range cases {
		toks := lexOK(t, c.data)
		assert.Equal(t, c.expect, kinds(toks), "input %q", c.data)
	}
}

func TestLexerIdentifiersAndKeywords(t *testing.T) {
	toks := lexOK(t, "U8 x static while _leading1")
	require.Len(t, toks, 6)

	assert.Equal(t, IDENTIFIER, toks[0].Kind)
	assert.Equal(t, "U8", toks[0].Value)

	assert.Equal(t, IDENTIFIER, toks[1].Kind)
	assert.Equal(t, "x", toks[1].Value)

	assert.Equal(t, KEYWORD, toks[2].Kind)
	assert.Equal(t, "static", toks[2].Value)

	assert.Equal(t, KEYWORD, toks[3].Kind)
	assert.Equal(t, "while", toks[3].Value)

	assert.Equal(t, IDENTIFIER, toks[4].Kind)
	assert.Equal(t, "_leading1", toks[4].Value)

	assert.Equal(t, EOF, toks[5].Kind)
}

func TestLexerNumbers(t *testing.T) {
	toks := lexOK(t, "123 1.5")
	require.Len(t, toks, 3)
	assert.Equal(t, INT, toks[0].Kind)
	assert.Equal(t, "123", toks[0].Value)
	assert.Equal(t, FLOAT, toks[1].Kind)
	assert.Equal(t, "1.5", toks[1].Value)

	_, err := Lex([]byte("1..2"), "test.hc", NopSink{})
	assert.Error(t, err)
}

func TestLexerStrings(t *testing.T) {
	toks := lexOK(t, `"hi\n" ""`)
	require.Len(t, toks, 3)
	assert.Equal(t, STRING, toks[0].Kind)
	assert.Equal(t, "hi\n", toks[0].Value)
	assert.EqualValues(t, 6, toks[0].Length) // `"hi\n"` is 6 source bytes, quotes included

	assert.Equal(t, STRING, toks[1].Kind)
	assert.Equal(t, "", toks[1].Value)
	assert.True(t, toks[1].HasValue)

	_, err := Lex([]byte(`"unterminated`), "test.hc", NopSink{})
	assert.Error(t, err)
}

// TestLexerStringWithRawNewlineTracksLinePosition covers a string literal
// that spans a raw (unescaped) newline: the token after the closing quote
// must still see the correct line/column, not one that's drifted from
// treating the embedded '\n' as an ordinary column-advancing byte.
func TestLexerStringWithRawNewlineTracksLinePosition(t *testing.T) {
	toks := lexOK(t, "\"a\nb\" c")
	require.Len(t, toks, 3)
	assert.Equal(t, STRING, toks[0].Kind)
	assert.Equal(t, "a\nb", toks[0].Value)

	assert.Equal(t, IDENTIFIER, toks[1].Kind)
	assert.Equal(t, Position{Index: 6, Line: 2, Col: 4}, toks[1].Pos)
}

func TestLexerCharLiterals(t *testing.T) {
	toks := lexOK(t, `'a' '\n' '\x41'`)
	require.Len(t, toks, 4)
	assert.Equal(t, "a", toks[0].Value)
	assert.Equal(t, "\n", toks[1].Value)
	assert.Equal(t, "A", toks[2].Value)

	_, err := Lex([]byte(`''`), "test.hc", NopSink{})
	assert.Error(t, err)
}

func TestLexerEscapeOverflowWarns(t *testing.T) {
	sink := &CollectingSink{}
	_, err := Lex([]byte(`"\xFFFF"`), "test.hc", sink)
	require.NoError(t, err)
	require.Len(t, sink.Diagnostics, 1)
	assert.Equal(t, SeverityWarning, sink.Diagnostics[0].Severity)
}

func TestLexerUnrecognizedEscapeWarns(t *testing.T) {
	sink := &CollectingSink{}
	toks, err := Lex([]byte(`"\q"`), "test.hc", sink)
	require.NoError(t, err)
	require.Len(t, sink.Diagnostics, 1)
	assert.Equal(t, "q", toks[0].Value)
}

func TestLexerCommentsAreSkipped(t *testing.T) {
	toks := lexOK(t, "x; // trailing comment\ny;")
	assert.Equal(t, []TokenKind{IDENTIFIER, SEMICOLON, IDENTIFIER, SEMICOLON, EOF}, kinds(toks))

	toks = lexOK(t, "x /* block \n comment */ y;")
	assert.Equal(t, []TokenKind{IDENTIFIER, IDENTIFIER, SEMICOLON, EOF}, kinds(toks))

	_, err := Lex([]byte("x /* unterminated"), "test.hc", NopSink{})
	assert.Error(t, err)
}

func TestLexerWhitespaceOnlyInputYieldsOnlyEOF(t *testing.T) {
	toks := lexOK(t, "   \t\n\n  ")
	require.Len(t, toks, 1)
	assert.Equal(t, EOF, toks[0].Kind)
}

func TestLexerPositionTracking(t *testing.T) {
	toks := lexOK(t, "ab\ncd")
	require.Len(t, toks, 3)

	assert.Equal(t, Position{Index: 0, Line: 1, Col: 1}, toks[0].Pos)
	assert.Equal(t, Position{Index: 3, Line: 2, Col: 1}, toks[1].Pos)
}

func TestLexerEOFIsUnique(t *testing.T) {
	toks := lexOK(t, "a b c")
	for _, tok := range toks[:len(toks)-1] {
		assert.NotEqual(t, EOF, tok.Kind)
	}
	assert.Equal(t, EOF, toks[len(toks)-1].Kind)
}

func BenchmarkLexer1000(b *testing.B) {
	src := []byte(strings.Repeat("x = x + 1;\n", 1000))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Lex(src, "bench.hc", NopSink{}); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLexer100000(b *testing.B) {
	src := []byte(strings.Repeat("x = x + 1;\n", 100000))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Lex(src, "bench.hc", NopSink{}); err != nil {
			b.Fatal(err)
		}
	}
}
