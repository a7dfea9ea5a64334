package scan

import (
	"cmp"
	"context"
	"fmt"
	"os"
	"runtime"
	"slices"
	"strings"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"twc/classes"
	"twc/config"
	"twc/lexer"
)

// Compiler resolves a single class.
type Compiler interface {
	Class(raw string) classes.Class
}

// Finding is a problem with one class of a source file.
type Finding struct {
	File    string `json:"file" yaml:"file"`
	Line    int    `json:"line" yaml:"line"`
	Column  int    `json:"column" yaml:"column"`
	Class   string `json:"class" yaml:"class"`
	Problem string `json:"problem" yaml:"problem"`
}

func (f Finding) String() string {
	return fmt.Sprintf("%s:%d:%d: %s: %s", f.File, f.Line, f.Column, f.Class, f.Problem)
}

// Linter checks the class lists of source files.
type Linter struct {
	log       *zap.Logger
	compiler  Compiler
	matcher   *Matcher
	extractor *Extractor
	workers   int
	rpt       *config.Report
}

// NewLinter creates a linter selecting files and attributes as configured.
// rpt may be nil, otherwise the findings of every linted file are stored in
// it.
func NewLinter(cfg config.ScanConfig, compiler Compiler, rpt *config.Report, log *zap.Logger) (*Linter, error) {
	if log == nil {
		log = zap.NewNop()
	}
	m, err := NewMatcher(cfg.Include, cfg.Exclude)
	if err != nil {
		return nil, err
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Linter{
		log:       log.Named("lint"),
		compiler:  compiler,
		matcher:   m,
		extractor: NewExtractor(cfg.Attributes),
		workers:   workers,
		rpt:       rpt,
	}, nil
}

// Lint checks every selected file under the roots. Files are processed
// concurrently, findings come back ordered by file and position. Errors of
// single files do not stop the others and are combined.
func (l *Linter) Lint(ctx context.Context, roots ...string) ([]Finding, error) {
	var (
		files []string
		err   error
	)
	for _, root := range roots {
		found, e := l.matcher.Discover(root)
		if e != nil {
			err = multierr.Append(err, fmt.Errorf("unable to discover files under %s: %w", root, e))
			continue
		}
		files = append(files, found...)
	}
	slices.Sort(files)
	files = slices.Compact(files)
	l.log.Debug("Discovered files", zap.Int("count", len(files)), zap.Int("workers", l.workers))

	var (
		mu       sync.Mutex
		findings []Finding
		wg       sync.WaitGroup
		queue    = make(chan string)
	)
	for range min(l.workers, len(files)) {
		wg.Go(func() {
			for path := range queue {
				found, e := l.LintFile(path)
				mu.Lock()
				findings = append(findings, found...)
				err = multierr.Append(err, e)
				mu.Unlock()
			}
		})
	}
	for _, path := range files {
		if ctx.Err() != nil {
			break
		}
		queue <- path
	}
	close(queue)
	wg.Wait()

	if e := ctx.Err(); e != nil {
		err = multierr.Append(err, e)
	}
	SortFindings(findings)
	return findings, err
}

// LintFile checks a single file.
func (l *Linter) LintFile(path string) ([]Finding, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read source file: %w", err)
	}
	findings := l.LintData(path, data)
	if l.rpt != nil && len(findings) > 0 {
		var sb strings.Builder
		for _, f := range findings {
			sb.WriteString(f.String())
			sb.WriteByte('\n')
		}
		l.rpt.StoreData("lint/"+config.CleanFileName(path), []byte(sb.String()))
	}
	return findings, nil
}

// LintData checks the class lists in the content of a file.
func (l *Linter) LintData(name string, data []byte) []Finding {
	var findings []Finding
	occurrences := l.extractor.Extract(name, data)
	for _, occ := range occurrences {
		findings = append(findings, l.check(name, occ)...)
	}
	l.log.Debug("Linted file",
		zap.String("file", name),
		zap.Int("lists", len(occurrences)),
		zap.Int("findings", len(findings)))
	return findings
}

// check reports unknown utilities, unknown modifiers and repeated classes of
// one class list.
func (l *Linter) check(name string, occ Occurrence) []Finding {
	var (
		out  []Finding
		seen = make(map[string]bool)
		pos  = 0
	)
	for _, raw := range lexer.SplitClasses(occ.Value) {
		at := pos + strings.Index(occ.Value[pos:], raw)
		pos = at + len(raw)

		f := Finding{File: name, Line: occ.Line, Column: occ.Column, Class: raw}
		// class lists may span lines
		if nl := strings.LastIndexByte(occ.Value[:at], '\n'); nl >= 0 {
			f.Line += strings.Count(occ.Value[:at], "\n")
			f.Column = at - nl
		} else {
			f.Column += at
		}

		if seen[raw] {
			f.Problem = "repeated class"
			out = append(out, f)
			continue
		}
		seen[raw] = true

		c := l.compiler.Class(raw)
		if unknown := c.UnknownModifiers(); len(unknown) > 0 {
			f.Problem = "unknown modifier " + strings.Join(quoteAll(unknown), ", ")
			out = append(out, f)
		}
		switch {
		case !c.Known && c.Style.Raw == "":
			f.Problem = "missing utility"
			out = append(out, f)
		case !c.Known:
			f.Problem = fmt.Sprintf("unknown utility %q", c.Style.Raw)
			out = append(out, f)
		}
	}
	return out
}

func quoteAll(list []string) []string {
	out := make([]string, len(list))
	for i, s := range list {
		out[i] = fmt.Sprintf("%q", s)
	}
	return out
}

// SortFindings orders findings by file and position, stable for findings at
// the same place.
func SortFindings(findings []Finding) {
	slices.SortStableFunc(findings, func(a, b Finding) int {
		return cmp.Or(
			cmp.Compare(a.File, b.File),
			cmp.Compare(a.Line, b.Line),
			cmp.Compare(a.Column, b.Column),
		)
	})
}
