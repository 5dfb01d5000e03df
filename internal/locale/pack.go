// Package locale loads and validates the keyword tables that drive
// locale-specific keyword recognition in internal/lexer. A Pack is a
// small, self-contained configuration object: a language tag, a
// source-word → keyword-kind mapping, and an ordered list of entry
// function names the driver tries when no explicit entry is named.
package locale

import (
	"fmt"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/gubiczam/runa/internal/errors"
	"github.com/gubiczam/runa/internal/lexer"
)

// Pack is a validated locale keyword table.
type Pack struct {
	// Tag is the pack's BCP-47 language tag, e.g. "en" or "hu".
	Tag language.Tag

	// Keywords maps source word -> keyword Kind, already resolved from
	// the raw "word -> KwXxx" document.
	Keywords map[string]lexer.Kind

	// PreferredEntries lists entry-function names the driver tries, in
	// order, before falling back to "main".
	PreferredEntries []string
}

// rawPack is the wire shape of a locale pack document (YAML or JSON):
//
//	tag: hu
//	preferred_entries: [fo, main]
//	keywords:
//	  fuggveny: KwFn
//	  ha: KwIf
type rawPack struct {
	Tag              string            `yaml:"tag" json:"tag"`
	PreferredEntries []string          `yaml:"preferred_entries" json:"preferred_entries"`
	Keywords         map[string]string `yaml:"keywords" json:"keywords"`
}

// newPackFromRaw validates a raw keyword table (word -> keyword-kind
// identifier, e.g. "fuggveny" -> "KwFn") and builds a Pack. An unknown
// keyword-kind identifier is a LocaleError-class failure: it means the
// pack file names a keyword the language doesn't have.
func newPackFromRaw(raw rawPack) (*Pack, error) {
	tag := language.English
	if raw.Tag != "" {
		parsed, err := language.Parse(raw.Tag)
		if err != nil {
			return nil, fmt.Errorf("locale: invalid language tag %q: %w", raw.Tag, err)
		}
		tag = parsed
	}

	keywords := make(map[string]lexer.Kind, len(raw.Keywords))
	for word, kindName := range raw.Keywords {
		kind, ok := lexer.KeywordKindByName(kindName)
		if !ok {
			return nil, errors.New(errors.Locale, lexer.Position{}, "",
				"unknown keyword-kind identifier %q for word %q", kindName, word)
		}
		keywords[word] = kind
	}

	entries := raw.PreferredEntries
	if entries == nil {
		entries = []string{}
	}

	return &Pack{Tag: tag, Keywords: keywords, PreferredEntries: entries}, nil
}

// SortedWords returns the pack's source words sorted using a
// language-aware collator for the pack's tag, so keyword listings
// (e.g. the `runa locale list` command) order accented words the way a
// native reader of that locale expects rather than by raw byte value.
func (p *Pack) SortedWords() []string {
	words := make([]string, 0, len(p.Keywords))
	for w := range p.Keywords {
		words = append(words, w)
	}
	col := collate.New(p.Tag)
	sort.Slice(words, func(i, j int) bool {
		return col.CompareString(words[i], words[j]) < 0
	})
	return words
}

// EntryCandidates returns the ordered list of entry-function names the
// driver should try: the pack's preferred entries followed by the
// literal fallback "main" (deduplicated).
func (p *Pack) EntryCandidates() []string {
	seen := make(map[string]bool, len(p.PreferredEntries)+1)
	var out []string
	for _, name := range p.PreferredEntries {
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	if !seen["main"] {
		out = append(out, "main")
	}
	return out
}
