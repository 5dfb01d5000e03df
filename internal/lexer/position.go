package lexer

import "fmt"

// Position identifies a location in source text by 1-based line and
// column. Columns count runes, not bytes, so multi-byte UTF-8
// sequences (accented locale keywords included) occupy a single
// column each.
type Position struct {
	Line   int
	Column int
}

// String renders the position as "line:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
