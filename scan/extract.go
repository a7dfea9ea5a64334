package scan

import (
	"bytes"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/html"
)

// Occurrence is a class list found in a source file.
type Occurrence struct {
	Attribute string
	Value     string
	// Line and Column (both 1 based, column in bytes) locate the first
	// character of the value.
	Line   int
	Column int
}

// markup files go through the HTML lexer, anything else is searched for
// attribute assignments.
var markupExts = []string{".html", ".htm", ".xhtml", ".vue", ".svelte"}

// Extractor finds class lists in attributes with configured names.
type Extractor struct {
	attrs []string
	// attribute assignment in script sources: class="..", className={'..'}
	// and template literals without substitutions
	assign *regexp.Regexp
}

func NewExtractor(attrs []string) *Extractor {
	names := slices.Clone(attrs)
	// longest first so that "class:list" is tried before "class"
	slices.SortFunc(names, func(a, b string) int { return len(b) - len(a) })
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = regexp.QuoteMeta(n)
	}
	return &Extractor{
		attrs: attrs,
		assign: regexp.MustCompile(`(?:^|[^\w:.$-])(` + strings.Join(quoted, "|") + `)\s*=\s*` +
			`(?:"([^"]*)"|'([^']*)'|\{\s*(?:"([^"]*)"|'([^']*)'|` + "`([^`$]*)`" + `)\s*\})`),
	}
}

// Extract returns the class lists of a file in source order. The file name
// selects the extraction method.
func (x *Extractor) Extract(name string, data []byte) []Occurrence {
	if slices.Contains(markupExts, strings.ToLower(filepath.Ext(name))) {
		return x.markup(data)
	}
	return x.script(data)
}

func (x *Extractor) script(data []byte) []Occurrence {
	var (
		out []Occurrence
		pos = newPositions(data)
	)
	for _, m := range x.assign.FindAllSubmatchIndex(data, -1) {
		for g := 2; g*2 < len(m); g++ {
			start, end := m[g*2], m[g*2+1]
			if start < 0 {
				continue
			}
			line, col := pos.at(start)
			out = append(out, Occurrence{
				Attribute: string(data[m[2]:m[3]]),
				Value:     string(data[start:end]),
				Line:      line,
				Column:    col,
			})
			break
		}
	}
	return out
}

func (x *Extractor) markup(data []byte) []Occurrence {
	var (
		out []Occurrence
		pos = newPositions(data)
		in  = parse.NewInputBytes(bytes.Clone(data))
		lex = html.NewLexer(in)
	)
	for {
		tt, _ := lex.Next()
		switch tt {
		case html.ErrorToken:
			// io.EOF or broken markup, either way nothing more to find
			return out
		case html.AttributeToken:
			// the lexer lower cases attribute names
			name := string(lex.Text())
			idx := slices.IndexFunc(x.attrs, func(a string) bool { return strings.EqualFold(a, name) })
			if idx < 0 {
				continue
			}
			raw := lex.AttrVal()
			// the value ends the token, quotes included
			start := in.Offset() - len(raw)
			value := raw
			if len(value) >= 2 && (value[0] == '"' || value[0] == '\'') && value[len(value)-1] == value[0] {
				value = value[1 : len(value)-1]
				start++
			}
			line, col := pos.at(start)
			out = append(out, Occurrence{
				Attribute: x.attrs[idx],
				Value:     string(value),
				Line:      line,
				Column:    col,
			})
		}
	}
}

// positions converts byte offsets to lines and columns.
type positions []int

func newPositions(data []byte) positions {
	p := positions{0}
	for i, c := range data {
		if c == '\n' {
			p = append(p, i+1)
		}
	}
	return p
}

func (p positions) at(offset int) (line, col int) {
	// index of the first line start after offset
	i, found := slices.BinarySearch(p, offset)
	if found {
		return i + 1, 1
	}
	return i, offset - p[i-1] + 1
}
