package theme

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/multierr"
)

// Load reads token overrides from a file. The format is selected by the file
// extension: YAML (.yaml, .yml), TOML (.toml) or a stylesheet with Tailwind
// v4 "@theme" blocks (.css). Only tokens present in the file are set.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}

	t := &Theme{}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := decodeYAML(data, t); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(t); err != nil {
			return nil, fmt.Errorf("%s: failed to decode theme data: %w", path, err)
		}
	case ".css":
		if t, err = ParseCSS(bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%s: unsupported theme file type %q", path, ext)
	}
	return t, nil
}

// LoadFiles merges every file over the embedded default theme in order. All
// files are read even when some fail, errors are combined.
func LoadFiles(paths ...string) (*Theme, error) {
	var (
		t   = Default()
		err error
	)
	for _, path := range paths {
		over, e := Load(path)
		if e != nil {
			err = multierr.Append(err, e)
			continue
		}
		t.Merge(over)
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Custom property namespaces recognized inside "@theme" blocks, longest first
// where one namespace is a prefix of another.
var cssNamespaces = []struct {
	prefix string
	set    func(t *Theme, name, value string) error
}{
	{"--color-", func(t *Theme, name, value string) error {
		t.Colors = overlay(t.Colors, map[string]string{name: value})
		return nil
	}},
	{"--breakpoint-", lengthSetter(func(t *Theme) *map[string]float64 { return &t.Breakpoints })},
	{"--container-", lengthSetter(func(t *Theme) *map[string]float64 { return &t.Containers })},
	{"--radius-", lengthSetter(func(t *Theme) *map[string]float64 { return &t.Radius })},
	{"--blur-", lengthSetter(func(t *Theme) *map[string]float64 { return &t.Blur })},
	{"--font-weight-", func(t *Theme, name, value string) error {
		w, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("font weight %q: %w", name, err)
		}
		t.FontWeight = overlay(t.FontWeight, map[string]int{name: w})
		return nil
	}},
	{"--font-", func(t *Theme, name, value string) error {
		t.FontFamily = overlay(t.FontFamily, map[string]string{name: firstFamily(value)})
		return nil
	}},
	{"--text-", func(t *Theme, name, value string) error {
		if base, ok := strings.CutSuffix(name, "--line-height"); ok {
			fs := t.FontSize[base]
			lh, relative, err := parseLineHeight(value)
			if err != nil {
				return fmt.Errorf("line height %q: %w", base, err)
			}
			if relative {
				lh *= fs.Size
			}
			fs.LineHeight = lh
			t.FontSize = overlay(t.FontSize, map[string]FontSize{base: fs})
			return nil
		}
		size, err := parseLength(value)
		if err != nil {
			return fmt.Errorf("font size %q: %w", name, err)
		}
		fs := t.FontSize[name]
		fs.Size = size
		t.FontSize = overlay(t.FontSize, map[string]FontSize{name: fs})
		return nil
	}},
	{"--shadow-", func(t *Theme, name, value string) error {
		t.Shadow = overlay(t.Shadow, map[string]string{name: value})
		return nil
	}},
	{"--tracking-", func(t *Theme, name, value string) error {
		v, err := strconv.ParseFloat(strings.TrimSuffix(value, "em"), 64)
		if err != nil {
			return fmt.Errorf("tracking %q: %w", name, err)
		}
		t.Tracking = overlay(t.Tracking, map[string]float64{name: v})
		return nil
	}},
	{"--leading-", func(t *Theme, name, value string) error {
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("leading %q: %w", name, err)
		}
		t.Leading = overlay(t.Leading, map[string]float64{name: v})
		return nil
	}},
	{"--ease-", func(t *Theme, name, value string) error {
		t.Ease = overlay(t.Ease, map[string]string{name: value})
		return nil
	}},
}

func lengthSetter(field func(t *Theme) *map[string]float64) func(t *Theme, name, value string) error {
	return func(t *Theme, name, value string) error {
		v, err := parseLength(value)
		if err != nil {
			return fmt.Errorf("length %q: %w", name, err)
		}
		m := field(t)
		*m = overlay(*m, map[string]float64{name: v})
		return nil
	}
}

// ParseCSS extracts tokens from "@theme { --namespace-name: value; }" blocks.
// Declarations outside of "@theme" are ignored, as are unknown namespaces.
func ParseCSS(r io.Reader) (*Theme, error) {
	var (
		t       = &Theme{}
		lex     = css.NewLexer(parse.NewInput(r))
		inTheme bool
		pending bool // "@theme" seen, waiting for its block
		depth   int
		errs    error
	)

	for {
		tt, data := lex.Next()
		switch tt {
		case css.ErrorToken:
			if err := lex.Err(); err != nil && !errors.Is(err, io.EOF) {
				errs = multierr.Append(errs, fmt.Errorf("failed to parse stylesheet: %w", err))
			}
			if errs != nil {
				return nil, errs
			}
			return t, nil
		case css.AtKeywordToken:
			pending = !inTheme && strings.EqualFold(string(data), "@theme")
		case css.SemicolonToken:
			pending = false
		case css.LeftBraceToken:
			depth++
			if pending {
				inTheme, pending = true, false
				depth = 1
			}
		case css.RightBraceToken:
			depth--
			if depth <= 0 {
				inTheme, depth = false, 0
			}
		case css.CustomPropertyNameToken, css.IdentToken:
			if !inTheme || depth != 1 || !strings.HasPrefix(string(data), "--") {
				continue
			}
			name := string(data)
			value, closed, ok := declarationValue(lex)
			if ok {
				if err := setCSSToken(t, name, value); err != nil {
					errs = multierr.Append(errs, err)
				}
			}
			if closed {
				inTheme, depth = false, 0
			}
		}
	}
}

// declarationValue consumes ": value;" after a custom property name. The last
// declaration of a block may omit the semicolon, closed reports that the
// block's closing brace has been consumed instead.
func declarationValue(lex *css.Lexer) (value string, closed, ok bool) {
	tt, _ := lex.Next()
	for tt == css.WhitespaceToken || tt == css.CommentToken {
		tt, _ = lex.Next()
	}
	if tt != css.ColonToken {
		return "", tt == css.RightBraceToken, false
	}

	var (
		sb    strings.Builder
		depth int
	)
	for {
		tt, data := lex.Next()
		switch tt {
		case css.ErrorToken:
			return strings.TrimSpace(sb.String()), false, true
		case css.FunctionToken, css.LeftParenthesisToken, css.LeftBracketToken:
			depth++
		case css.RightParenthesisToken, css.RightBracketToken:
			depth--
		case css.SemicolonToken:
			if depth <= 0 {
				return strings.TrimSpace(sb.String()), false, true
			}
		case css.RightBraceToken:
			if depth <= 0 {
				return strings.TrimSpace(sb.String()), true, true
			}
		case css.CommentToken:
			continue
		}
		sb.Write(data)
	}
}

func setCSSToken(t *Theme, name, value string) error {
	if strings.HasPrefix(name, "--text-shadow-") || strings.Contains(name, "*") {
		return nil
	}
	if name == "--spacing" {
		v, err := parseLength(value)
		if err != nil {
			return fmt.Errorf("spacing: %w", err)
		}
		t.SpacingUnit = v
		return nil
	}
	for _, ns := range cssNamespaces {
		if key, ok := strings.CutPrefix(name, ns.prefix); ok && key != "" {
			return ns.set(t, key, value)
		}
	}
	return nil
}

// parseLength converts px and rem lengths (and bare numbers) to pixels.
func parseLength(value string) (float64, error) {
	v := strings.TrimSpace(value)
	scale := 1.0
	switch {
	case strings.HasSuffix(v, "rem"):
		v, scale = strings.TrimSuffix(v, "rem"), 16
	case strings.HasSuffix(v, "em"):
		v, scale = strings.TrimSuffix(v, "em"), 16
	case strings.HasSuffix(v, "px"):
		v = strings.TrimSuffix(v, "px")
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("unsupported length %q", value)
	}
	return n * scale, nil
}

// parseLineHeight accepts lengths, unitless multipliers and the
// "calc(a / b)" ratios Tailwind uses for its type scale.
func parseLineHeight(value string) (float64, bool, error) {
	v := strings.TrimSpace(value)
	if inner, ok := strings.CutPrefix(v, "calc("); ok {
		a, b, found := strings.Cut(strings.TrimSuffix(inner, ")"), "/")
		if !found {
			return 0, false, fmt.Errorf("unsupported line height %q", value)
		}
		x, err1 := strconv.ParseFloat(strings.TrimSpace(a), 64)
		y, err2 := strconv.ParseFloat(strings.TrimSpace(b), 64)
		if err1 != nil || err2 != nil || y == 0 {
			return 0, false, fmt.Errorf("unsupported line height %q", value)
		}
		return x / y, true, nil
	}
	if n, err := strconv.ParseFloat(v, 64); err == nil {
		return n, true, nil
	}
	n, err := parseLength(v)
	return n, false, err
}

func firstFamily(value string) string {
	first, _, _ := strings.Cut(value, ",")
	return strings.Trim(strings.TrimSpace(first), `"'`)
}
