package lexer_test

import (
	"testing"

	"github.com/gubiczam/runa/internal/lexer"
)

func enKeywords() map[string]lexer.Kind {
	return map[string]lexer.Kind{
		"fn":       lexer.KwFn,
		"let":      lexer.KwLet,
		"if":       lexer.KwIf,
		"else":     lexer.KwElse,
		"return":   lexer.KwReturn,
		"while":    lexer.KwWhile,
		"for":      lexer.KwFor,
		"in":       lexer.KwIn,
		"break":    lexer.KwBreak,
		"continue": lexer.KwContinue,
		"true":     lexer.KwTrue,
		"false":    lexer.KwFalse,
		"class":    lexer.KwClass,
	}
}

func kinds(t *testing.T, toks []lexer.Token) []lexer.Kind {
	t.Helper()
	out := make([]lexer.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func assertKinds(t *testing.T, source string, want []lexer.Kind) []lexer.Token {
	t.Helper()
	toks, err := lexer.Lex(source, enKeywords())
	if err != nil {
		t.Fatalf("Lex(%q): unexpected error: %v", source, err)
	}
	got := kinds(t, toks)
	if len(got) != len(want) {
		t.Fatalf("Lex(%q): got %d tokens %v, want %d %v", source, len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Lex(%q): token %d: got %s, want %s", source, i, got[i], want[i])
		}
	}
	return toks
}

func TestLexKeywordsAndIdentifiers(t *testing.T) {
	assertKinds(t, "fn add let x", []lexer.Kind{
		lexer.KwFn, lexer.IDENT, lexer.KwLet, lexer.IDENT, lexer.EOF,
	})
}

func TestLexMaximalMunch(t *testing.T) {
	toks := assertKinds(t, "== != <= >= && || -> = < > ! + - * / %", []lexer.Kind{
		lexer.Eq, lexer.Ne, lexer.Le, lexer.Ge, lexer.AndAnd, lexer.OrOr, lexer.Arrow,
		lexer.Assign, lexer.Lt, lexer.Gt, lexer.Not, lexer.Plus, lexer.Minus,
		lexer.Star, lexer.Slash, lexer.Percent, lexer.EOF,
	})
	if len(toks) == 0 {
		t.Fatal("expected tokens")
	}
}

func TestLexIntegerLiteral(t *testing.T) {
	toks, err := lexer.Lex("12345", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[0].Kind != lexer.INT || toks[0].IntValue != 12345 {
		t.Fatalf("got %+v, want INT(12345)", toks[0])
	}
}

func TestLexIntegerOverflow(t *testing.T) {
	_, err := lexer.Lex("99999999999999999999", nil)
	if err == nil {
		t.Fatal("expected overflow error, got nil")
	}
}

// TestLexIntegerOverflowWraparoundCase is a 20-digit literal that a
// naive "does multiplying overflow int64 wraparound" check fails to
// catch, since it never lands on a partial product smaller than the
// previous one. It must still be a LexError.
func TestLexIntegerOverflowWraparoundCase(t *testing.T) {
	_, err := lexer.Lex("27109593479478213234", nil)
	if err == nil {
		t.Fatal("expected overflow error, got nil")
	}
}

func TestLexIntegerLiteralAtMaxInt64(t *testing.T) {
	toks, err := lexer.Lex("9223372036854775807", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[0].IntValue != 9223372036854775807 {
		t.Fatalf("got %d, want math.MaxInt64", toks[0].IntValue)
	}
}

func TestLexIntegerLiteralOneOverMaxInt64(t *testing.T) {
	if _, err := lexer.Lex("9223372036854775808", nil); err == nil {
		t.Fatal("expected overflow error for MaxInt64+1, got nil")
	}
}

func TestLexStringEscapes(t *testing.T) {
	toks, err := lexer.Lex(`"a\nb\t\"c\\d"`, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "a\nb\t\"c\\d"
	if toks[0].Kind != lexer.STRING || toks[0].StrValue != want {
		t.Fatalf("got %+v, want STRING(%q)", toks[0], want)
	}
}

func TestLexUnterminatedString(t *testing.T) {
	if _, err := lexer.Lex(`"no closing quote`, nil); err == nil {
		t.Fatal("expected LexError for unterminated string")
	}
}

func TestLexBadEscape(t *testing.T) {
	if _, err := lexer.Lex(`"\q"`, nil); err == nil {
		t.Fatal("expected LexError for unknown escape sequence")
	}
}

func TestLexLineCommentsAndWhitespace(t *testing.T) {
	assertKinds(t, "  // a comment\n\tfn // trailing\n", []lexer.Kind{lexer.KwFn, lexer.EOF})
}

func TestLexUnrecognisedByte(t *testing.T) {
	if _, err := lexer.Lex("@", nil); err == nil {
		t.Fatal("expected LexError for unrecognised byte")
	}
}

// TestLexIdempotentUnderWhitespace checks that inserting whitespace
// outside strings/comments must not change the resulting kind sequence.
func TestLexIdempotentUnderWhitespace(t *testing.T) {
	a, err := lexer.Lex("fn main ( ) { return 1 + 2 ; }", enKeywords())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := lexer.Lex("fn   main(  )\n{\n  return\t1+2;\n}\n\n", enKeywords())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ka, kb := kinds(t, a), kinds(t, b)
	if len(ka) != len(kb) {
		t.Fatalf("kind sequence length differs: %v vs %v", ka, kb)
	}
	for i := range ka {
		if ka[i] != kb[i] {
			t.Fatalf("kind %d differs: %s vs %s", i, ka[i], kb[i])
		}
	}
}

func TestKeywordKindByNameUnknown(t *testing.T) {
	if _, ok := lexer.KeywordKindByName("KwBogus"); ok {
		t.Fatal("expected KwBogus to be an unknown keyword-kind identifier")
	}
	if _, ok := lexer.KeywordKindByName("KwFn"); !ok {
		t.Fatal("expected KwFn to resolve")
	}
}
