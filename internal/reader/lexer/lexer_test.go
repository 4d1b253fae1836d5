package lexer

import (
	"strings"
	"testing"

	"github.com/michaelmacinnis/tern/internal/common/struct/token"
)

func TestAbbreviations(t *testing.T) {
	h := setup(t, "Abbreviations")

	h.scan("'a `(b ,c ,@d)",
		h.token(token.Quote, "'"),
		h.token(token.Atom, "a"),
		h.token(token.Quasiquote, "`"),
		h.token(token.Open, "("),
		h.token(token.Atom, "b"),
		h.token(token.Unquote, ","),
		h.token(token.Atom, "c"),
		h.token(token.UnquoteSplicing, ",@"),
		h.token(token.Atom, "d"),
		h.token(token.Close, ")"),
		h.token(token.EOF, ""),
	)
}

func TestComments(t *testing.T) {
	h := setup(t, "Comments")

	h.scan("; line\n#| block #| nested |# |# x #;(y) z",
		h.token(token.Atom, "x"),
		h.token(token.DatumComment, "#;"),
		h.token(token.Open, "("),
		h.token(token.Atom, "y"),
		h.token(token.Close, ")"),
		h.token(token.Atom, "z"),
		h.token(token.EOF, ""),
	)
}

func TestDottedPair(t *testing.T) {
	h := setup(t, "DottedPair")

	h.scan("(a . b) ...",
		h.token(token.Open, "("),
		h.token(token.Atom, "a"),
		h.token(token.Dot, "."),
		h.token(token.Atom, "b"),
		h.token(token.Close, ")"),
		h.token(token.Atom, "..."),
		h.token(token.EOF, ""),
	)
}

func TestHashSyntax(t *testing.T) {
	h := setup(t, "HashSyntax")

	h.scan(`#t #(1) #\space #\( #!optional`,
		h.token(token.Atom, "#t"),
		h.token(token.VectorOpen, "#("),
		h.token(token.Atom, "1"),
		h.token(token.Close, ")"),
		h.token(token.Char, `#\space`),
		h.token(token.Char, `#\(`),
		h.token(token.Directive, "#!optional"),
		h.token(token.EOF, ""),
	)
}

func TestStrings(t *testing.T) {
	h := setup(t, "Strings")

	h.scan(`"a \"b\" c" |sym bol|`,
		h.token(token.String, `"a \"b\" c"`),
		h.token(token.Atom, "|sym bol|"),
		h.token(token.EOF, ""),
	)
}

func TestUnterminatedString(t *testing.T) {
	l := New("UnterminatedString", strings.NewReader(`"abc`))

	_, err := l.Token()
	if err != ErrUnexpectedEOF {
		t.Fatalf("Expected %v; got %v", ErrUnexpectedEOF, err)
	}
}

func TestLocations(t *testing.T) {
	l := New("Locations", strings.NewReader("a\n  b"))

	for _, expected := range []string{"Locations:1:1", "Locations:2:3"} {
		tok, err := l.Token()
		if err != nil {
			t.Fatal(err)
		}

		s := tok.Source()
		if actual := s.String(); actual != expected {
			t.Fatalf("Expected %s; got %s", expected, actual)
		}
	}
}

type harness struct {
	label string
	t     *testing.T
}

func setup(t *testing.T, label string) *harness {
	return &harness{label: label, t: t}
}

type expectation struct {
	class token.Class
	value string
}

func (h *harness) scan(s string, tokens ...expectation) {
	h.t.Helper()

	l := New(h.label, strings.NewReader(s))

	for _, e := range tokens {
		a, err := l.Token()
		if err != nil {
			h.t.Fatalf("Expected %v; got error %v", e, err)
		}

		if !a.Is(e.class) || a.Value() != e.value {
			h.t.Fatalf("Expected %s %q; got %v", e.class, e.value, a)
		}
	}
}

func (h *harness) token(class token.Class, value string) expectation {
	return expectation{class: class, value: value}
}
