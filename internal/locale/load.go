package locale

import (
	"embed"
	"fmt"
	"path/filepath"
	"strings"

	yaml "github.com/goccy/go-yaml"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

//go:embed packs/*.yaml
var builtinPacks embed.FS

// Builtin loads one of the locale packs shipped with the binary ("en"
// or "hu"). The CLI tries it first and only treats --locale as a file
// path when no built-in pack has that name.
func Builtin(name string) (*Pack, error) {
	data, err := builtinPacks.ReadFile(filepath.Join("packs", name+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("locale: no built-in pack named %q", name)
	}
	return decodeYAML(data)
}

// Load reads a locale pack from disk. The format is chosen by file
// extension: ".yaml"/".yml" is decoded with goccy/go-yaml (the primary
// format), ".json" is decoded with tidwall/gjson (an interchange
// format meant for tools that only want to shell out to `jq`-style
// queries rather than carry a YAML dependency).
func Load(path string, data []byte) (*Pack, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml", "":
		return decodeYAML(data)
	case ".json":
		return decodeJSON(data)
	default:
		return nil, fmt.Errorf("locale: unsupported pack format %q", ext)
	}
}

func decodeYAML(data []byte) (*Pack, error) {
	var raw rawPack
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("locale: invalid YAML pack: %w", err)
	}
	return newPackFromRaw(raw)
}

// decodeJSON reads the JSON interchange form with gjson instead of
// encoding/json, matching the rest of the toolchain's preference for
// the tidwall/gjson + tidwall/sjson pair over the standard library's
// reflection-based encoder when a document only needs to be queried
// and not round-tripped through a Go struct tag pipeline.
func decodeJSON(data []byte) (*Pack, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("locale: invalid JSON pack")
	}
	root := gjson.ParseBytes(data)

	raw := rawPack{
		Tag:      root.Get("tag").String(),
		Keywords: make(map[string]string),
	}
	for _, v := range root.Get("preferred_entries").Array() {
		raw.PreferredEntries = append(raw.PreferredEntries, v.String())
	}
	for word, kind := range root.Get("keywords").Map() {
		raw.Keywords[word] = kind.String()
	}
	return newPackFromRaw(raw)
}

// ToJSON serialises the pack back to the JSON interchange form,
// building the document incrementally with tidwall/sjson rather than
// constructing an intermediate struct, mirroring the query-oriented
// style decodeJSON uses to read it back.
func (p *Pack) ToJSON() (string, error) {
	doc := "{}"
	var err error
	doc, err = sjson.Set(doc, "tag", p.Tag.String())
	if err != nil {
		return "", err
	}
	doc, err = sjson.Set(doc, "preferred_entries", p.PreferredEntries)
	if err != nil {
		return "", err
	}
	for _, word := range p.SortedWords() {
		doc, err = sjson.Set(doc, "keywords."+sjsonEscape(word), p.Keywords[word].String())
		if err != nil {
			return "", err
		}
	}
	return doc, nil
}

// sjsonEscape escapes path separators sjson treats specially so that
// locale words containing '.' or '*' still address a single map key.
func sjsonEscape(word string) string {
	r := strings.NewReplacer(".", "\\.", "*", "\\*", "?", "\\?")
	return r.Replace(word)
}
