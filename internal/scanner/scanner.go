// Package scanner implements the single-pass line-length check for TeX
// sources. A Scanner walks the lines of one file, tracks open exempt
// environments on a stack and reports every checked line that is longer
// than the configured maximum.
package scanner

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/linelint/linelint/internal/types"
	"github.com/sirupsen/logrus"
)

// DefaultMaxLength is the line length used when none is configured.
const DefaultMaxLength = 80

// CommentMarker starts a comment line once leading whitespace is removed.
const CommentMarker = "%"

// ErrNegativeMaxLength is returned by New for a MaxLength below zero.
var ErrNegativeMaxLength = errors.New("max length must not be negative")

// Config controls a scan. It is read-only for the duration of a scan.
type Config struct {
	// MaxLength is the longest allowed line in characters. Zero flags every
	// checked non-empty line.
	MaxLength int
	// CheckComments subjects comment lines to the length check.
	CheckComments bool
	// Regions lists environment names whose bodies are exempt. An empty
	// list disables environment tracking.
	Regions []string
	// Starred makes every region name also match its starred variant,
	// e.g. "equation" matches \begin{equation*}.
	Starred bool
}

// DefaultConfig returns the configuration used by the CLI without flags.
func DefaultConfig() Config {
	return Config{MaxLength: DefaultMaxLength, CheckComments: true}
}

// Result is the outcome of scanning one source.
type Result struct {
	Violations []types.Violation
	Failed     bool
	Lines      int
	// Warnings counts environment nesting problems that were logged.
	Warnings int
}

type options struct {
	log         logrus.FieldLogger
	onViolation func(types.Violation)
}

// Option customizes a Scanner.
type Option func(*options)

// WithLogger sets the logger receiving environment nesting warnings.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) { o.log = l }
}

// OnViolation registers fn to be called for each violation as soon as it
// is found, in file order.
func OnViolation(fn func(types.Violation)) Option {
	return func(o *options) { o.onViolation = fn }
}

// Scanner checks sources against one Config. It holds no per-file state
// and may be shared by concurrent scans.
type Scanner struct {
	cfg         Config
	begin       *regexp.Regexp
	end         *regexp.Regexp
	log         logrus.FieldLogger
	onViolation func(types.Violation)
}

// New compiles the environment patterns for cfg.
func New(cfg Config, opts ...Option) (*Scanner, error) {
	if cfg.MaxLength < 0 {
		return nil, ErrNegativeMaxLength
	}
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		o.log = l
	}
	s := &Scanner{cfg: cfg, log: o.log, onViolation: o.onViolation}
	if alt := regionAlternation(cfg.Regions, cfg.Starred); alt != "" {
		s.begin = regexp.MustCompile(`^\\begin\{(` + alt + `)\}`)
		s.end = regexp.MustCompile(`^\\end\{(` + alt + `)\}`)
	}
	return s, nil
}

// Config returns the configuration the scanner was built with.
func (s *Scanner) Config() Config { return s.cfg }

// regionAlternation quotes each name and joins them into a regexp
// alternation. Blank names are skipped.
func regionAlternation(names []string, starred bool) string {
	seen := map[string]bool{}
	var parts []string
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		p := regexp.QuoteMeta(n)
		if starred {
			p += `\*?`
		}
		parts = append(parts, p)
	}
	return strings.Join(parts, "|")
}

// Scan reads r to the end and reports violations attributed to path.
// The only error returned is a read error from r; findings are never errors.
func (s *Scanner) Scan(r io.Reader, path string) (Result, error) {
	var res Result
	var stack envStack
	log := s.log.WithField("file", path)
	br := bufio.NewReader(r)
	for lineNo := 1; ; lineNo++ {
		raw, err := br.ReadString('\n')
		if raw == "" && err != nil {
			if errors.Is(err, io.EOF) {
				return res, nil
			}
			return res, fmt.Errorf("read %s: %w", path, err)
		}
		res.Lines = lineNo

		text := strings.TrimSuffix(strings.TrimSuffix(raw, "\n"), "\r")
		stripped := strings.TrimLeftFunc(text, unicode.IsSpace)

		inRegion := stack.depth() > 0
		if s.begin != nil {
			if m := s.begin.FindStringSubmatch(stripped); m != nil {
				stack.push(m[1])
			} else if m := s.end.FindStringSubmatch(stripped); m != nil {
				if !s.closeEnv(&stack, m[1], log.WithField("line", lineNo)) {
					res.Warnings++
				}
				inRegion = stack.depth() > 0
			}
		}

		comment := strings.HasPrefix(stripped, CommentMarker)
		exempt := inRegion || (comment && !s.cfg.CheckComments)
		if n := utf8.RuneCountInString(text); !exempt && n > s.cfg.MaxLength {
			v := types.Violation{
				Path:      path,
				Line:      lineNo,
				Length:    n,
				MaxLength: s.cfg.MaxLength,
				Text:      text,
			}
			res.Violations = append(res.Violations, v)
			res.Failed = true
			if s.onViolation != nil {
				s.onViolation(v)
			}
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				return res, nil
			}
			return res, fmt.Errorf("read %s: %w", path, err)
		}
	}
}

// closeEnv pops the stack for an \end{name} marker. A mismatched name is
// reported and the top is popped anyway so one bad close does not leave
// the rest of the file exempt. A close with nothing open is reported and
// ignored. It reports whether the close matched the innermost open name.
func (s *Scanner) closeEnv(stack *envStack, name string, log logrus.FieldLogger) bool {
	top, ok := stack.pop()
	switch {
	case !ok:
		log.Warnf("environment %q ended without being opened", name)
		return false
	case top != name:
		log.Warnf("environment %q ended before environment %q", name, top)
		return false
	}
	return true
}

// ScanFile opens path, scans it and closes it again.
func (s *Scanner) ScanFile(path string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, err
	}
	defer f.Close()
	return s.Scan(f, path)
}

// Scan is a convenience wrapper building a Scanner for a single source.
func Scan(r io.Reader, path string, cfg Config, opts ...Option) (Result, error) {
	s, err := New(cfg, opts...)
	if err != nil {
		return Result{}, err
	}
	return s.Scan(r, path)
}
