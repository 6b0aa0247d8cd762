package lexicon

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/svhawkins/czech-verb-conjugator/internal/domain"
)

// ErrMalformedRow is wrapped by every ParseError.
var ErrMalformedRow = errors.New("malformed lexicon row")

// ParseError reports the file and line of a row that could not be parsed.
type ParseError struct {
	File   string
	Line   int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return ErrMalformedRow
}

const irregularFields = 5

// ParseIrregular reads comma-separated irregular verb rows:
//
//	pattern,class,present stem,past stem,imperative stem
//
// Blank lines and lines starting with # are skipped.
func ParseIrregular(r io.Reader, name string) ([]domain.IrregularEntry, error) {
	var entries []domain.IrregularEntry
	err := eachLine(r, name, func(lineNum int, line string) error {
		fields := splitFields(line)
		if len(fields) != irregularFields {
			return &ParseError{File: name, Line: lineNum, Reason: fmt.Sprintf("expected %d fields, got %d", irregularFields, len(fields))}
		}

		class, err := strconv.Atoi(fields[1])
		if err != nil || class < 1 || class > 4 {
			return &ParseError{File: name, Line: lineNum, Reason: fmt.Sprintf("class must be 1-4, got %q", fields[1])}
		}
		if fields[0] == "" {
			return &ParseError{File: name, Line: lineNum, Reason: "empty pattern"}
		}
		if _, err := regexp.Compile("(" + fields[0] + ")$"); err != nil {
			return &ParseError{File: name, Line: lineNum, Reason: fmt.Sprintf("invalid pattern %q: %v", fields[0], err)}
		}

		entries = append(entries, domain.IrregularEntry{
			Pattern:        fields[0],
			Class:          class,
			PresentStem:    fields[2],
			PastStem:       fields[3],
			ImperativeStem: fields[4],
		})
		return nil
	})
	return entries, err
}

// ParsePrefixes reads one regex alternative per line.
func ParsePrefixes(r io.Reader, name string) ([]string, error) {
	var prefixes []string
	err := eachLine(r, name, func(lineNum int, line string) error {
		if _, err := regexp.Compile("^(" + line + ")"); err != nil {
			return &ParseError{File: name, Line: lineNum, Reason: fmt.Sprintf("invalid prefix %q: %v", line, err)}
		}
		prefixes = append(prefixes, line)
		return nil
	})
	return prefixes, err
}

// ParseConcrete reads infinitive,prefix rows of motion verbs.
func ParseConcrete(r io.Reader, name string) ([]domain.ConcreteEntry, error) {
	var entries []domain.ConcreteEntry
	err := eachLine(r, name, func(lineNum int, line string) error {
		fields := splitFields(line)
		if len(fields) != 2 || fields[0] == "" || fields[1] == "" {
			return &ParseError{File: name, Line: lineNum, Reason: "expected infinitive,prefix"}
		}
		entries = append(entries, domain.ConcreteEntry{Infinitive: fields[0], Prefix: fields[1]})
		return nil
	})
	return entries, err
}

// LoadFiles reads the three tables from disk. An empty path falls back to the
// embedded default for that table.
func LoadFiles(irregularPath, prefixPath, concretePath string) (*Lexicon, error) {
	def := Default()

	irregular := def.Irregular()
	if irregularPath != "" {
		var err error
		if irregular, err = parseFile(irregularPath, ParseIrregular); err != nil {
			return nil, err
		}
	}

	prefixes := def.Prefixes()
	if prefixPath != "" {
		var err error
		if prefixes, err = parseFile(prefixPath, ParsePrefixes); err != nil {
			return nil, err
		}
	}

	concrete := def.Concrete()
	if concretePath != "" {
		var err error
		if concrete, err = parseFile(concretePath, ParseConcrete); err != nil {
			return nil, err
		}
	}

	return New(irregular, prefixes, concrete), nil
}

func parseFile[T any](path string, parse func(io.Reader, string) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return parse(f, path)
}

func eachLine(r io.Reader, name string, fn func(lineNum int, line string) error) error {
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := fn(lineNum, line); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	return nil
}

func splitFields(line string) []string {
	fields := strings.Split(line, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields
}
