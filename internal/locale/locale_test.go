package locale_test

import (
	"strings"
	"testing"

	"github.com/gubiczam/runa/internal/locale"
)

func TestBuiltinEnglish(t *testing.T) {
	pack, err := locale.Builtin("en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pack.Tag.String() != "en" {
		t.Fatalf("got tag %q, want \"en\"", pack.Tag.String())
	}
	if len(pack.Keywords) == 0 {
		t.Fatal("expected a non-empty keyword table")
	}
}

func TestBuiltinHungarian(t *testing.T) {
	pack, err := locale.Builtin("hu")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pack.Tag.String() != "hu" {
		t.Fatalf("got tag %q, want \"hu\"", pack.Tag.String())
	}
}

func TestBuiltinUnknownName(t *testing.T) {
	if _, err := locale.Builtin("xx"); err == nil {
		t.Fatal("expected an error for an unknown built-in pack name")
	}
}

func TestLoadYAML(t *testing.T) {
	data := []byte("tag: en\npreferred_entries: [main]\nkeywords:\n  fn: KwFn\n  let: KwLet\n")
	pack, err := locale.Load("custom.yaml", data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pack.Keywords) != 2 {
		t.Fatalf("expected 2 keywords, got %d", len(pack.Keywords))
	}
}

func TestLoadJSON(t *testing.T) {
	data := []byte(`{"tag":"en","preferred_entries":["main"],"keywords":{"fn":"KwFn","let":"KwLet"}}`)
	pack, err := locale.Load("custom.json", data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pack.Keywords) != 2 {
		t.Fatalf("expected 2 keywords, got %d", len(pack.Keywords))
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	if _, err := locale.Load("custom.toml", []byte("x")); err == nil {
		t.Fatal("expected an error for an unsupported pack extension")
	}
}

func TestLoadUnknownKeywordKindIsError(t *testing.T) {
	data := []byte("tag: en\nkeywords:\n  fn: KwNope\n")
	if _, err := locale.Load("custom.yaml", data); err == nil {
		t.Fatal("expected an error for an unknown keyword-kind identifier")
	}
}

func TestLoadInvalidYAMLIsError(t *testing.T) {
	if _, err := locale.Load("custom.yaml", []byte(":::not yaml:::")); err == nil {
		t.Fatal("expected an error for malformed YAML")
	}
}

func TestLoadInvalidJSONIsError(t *testing.T) {
	if _, err := locale.Load("custom.json", []byte("{not json")); err == nil {
		t.Fatal("expected an error for malformed JSON")
	}
}

func TestEntryCandidatesOrderingAndFallback(t *testing.T) {
	en, err := locale.Builtin("en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := en.EntryCandidates()
	want := []string{"main"}
	if len(got) != len(want) || got[0] != want[0] {
		t.Fatalf("got %v, want %v", got, want)
	}

	hu, err := locale.Builtin("hu")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got = hu.EntryCandidates()
	want = []string{"fo", "main"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestEntryCandidatesDeduplicatesMain(t *testing.T) {
	data := []byte("tag: en\npreferred_entries: [main, main]\nkeywords:\n  fn: KwFn\n")
	pack, err := locale.Load("custom.yaml", data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := pack.EntryCandidates()
	if len(got) != 1 || got[0] != "main" {
		t.Fatalf("expected [\"main\"] deduplicated, got %v", got)
	}
}

func TestSortedWordsIsSortedAndComplete(t *testing.T) {
	pack, err := locale.Builtin("en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	words := pack.SortedWords()
	if len(words) != len(pack.Keywords) {
		t.Fatalf("expected %d words, got %d", len(pack.Keywords), len(words))
	}
	for i := 1; i < len(words); i++ {
		if words[i-1] > words[i] {
			t.Fatalf("words not in ascending order at %d: %q > %q", i, words[i-1], words[i])
		}
	}
}

func TestToJSONRoundTrip(t *testing.T) {
	pack, err := locale.Builtin("hu")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc, err := pack.ToJSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(doc, `"tag":"hu"`) {
		t.Fatalf("expected tag in JSON doc, got %s", doc)
	}

	reparsed, err := locale.Load("roundtrip.json", []byte(doc))
	if err != nil {
		t.Fatalf("unexpected error reparsing round-tripped JSON: %v", err)
	}
	if len(reparsed.Keywords) != len(pack.Keywords) {
		t.Fatalf("expected %d keywords after round-trip, got %d", len(pack.Keywords), len(reparsed.Keywords))
	}
	for word, kind := range pack.Keywords {
		if reparsed.Keywords[word] != kind {
			t.Fatalf("keyword %q: got %v, want %v", word, reparsed.Keywords[word], kind)
		}
	}
}

func TestToJSONEscapesSpecialWordCharacters(t *testing.T) {
	data := []byte("tag: en\nkeywords:\n  \"a.b\": KwFn\n")
	pack, err := locale.Load("custom.yaml", data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc, err := pack.ToJSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	reparsed, err := locale.Load("roundtrip.json", []byte(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := reparsed.Keywords["a.b"]; !ok {
		t.Fatalf("expected keyword %q to survive the JSON round-trip, got %v", "a.b", reparsed.Keywords)
	}
}
