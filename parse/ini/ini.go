package ini

// Package ini implements a line-oriented INI parser with an explicit section
// model, deterministic duplicate handling, and a single-pass key lookup that
// skips model construction entirely.
//
// Scope:
// - Global prologue plus bracket-named sections of key=value pairs
// - First-write-wins duplicate keys inside a section
// - Last-write-wins duplicate section names across the file
// - Content-equivalent rendering round-trip
//
// Non-goals (by design):
// - Nested sections
// - Multi-line values, escape sequences, comments
// - Ordered formatting round-trip
// - Streaming or concurrent input
//
// Unparsable lines are not errors: they are logged and skipped, and parsing
// continues.

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"
)

// =========================
// Line Grammar
// =========================

const (
	entryKeyGroupName    = "key"
	entryValueGroupName  = "value"
	sectionNameGroupName = "section_name"
)

// Keys and values are maximal runs excluding '=' and whitespace. A section
// name is everything between the first '[' and the last ']': the interior
// match is greedy, so a name may itself contain ']' characters.
var (
	keyValueRegex      = regexp.MustCompile(`^\s*(?P<key>[^=\s]+)\s*=\s*(?P<value>[^=\s]+)\s*$`)
	sectionHeaderRegex = regexp.MustCompile(`^\[(?P<section_name>.+)\]$`)
)

// ErrCaptureGroup reports that a line matched a grammar pattern but the
// pattern's expected named group could not be resolved. This is a defect in
// the grammar definition itself, never a property of the input, and is
// propagated untouched.
var ErrCaptureGroup = errors.New("named capture group not found in grammar pattern")

type lineClass uint8

const (
	classBlank lineClass = iota
	classKeyValue
	classSectionHeader
	classUnparsable
)

// classifiedLine is the classifier's verdict on one trimmed line. key and
// value are set for classKeyValue, name for classSectionHeader.
type classifiedLine struct {
	class lineClass
	key   string
	value string
	name  string
}

func captureGroup(re *regexp.Regexp, match []string, group string) (string, error) {
	idx := re.SubexpIndex(group)
	if idx < 0 || idx >= len(match) {
		return "", fmt.Errorf("%w: %s", ErrCaptureGroup, group)
	}
	return match[idx], nil
}

// classifyLine matches one already-trimmed line against the grammar. The two
// matching patterns are mutually exclusive, so attempt order is cosmetic.
func classifyLine(line string) (classifiedLine, error) {
	if line == "" {
		return classifiedLine{class: classBlank}, nil
	}

	if match := keyValueRegex.FindStringSubmatch(line); match != nil {
		key, err := captureGroup(keyValueRegex, match, entryKeyGroupName)
		if err != nil {
			return classifiedLine{}, err
		}
		value, err := captureGroup(keyValueRegex, match, entryValueGroupName)
		if err != nil {
			return classifiedLine{}, err
		}
		return classifiedLine{class: classKeyValue, key: key, value: value}, nil
	}

	if match := sectionHeaderRegex.FindStringSubmatch(line); match != nil {
		name, err := captureGroup(sectionHeaderRegex, match, sectionNameGroupName)
		if err != nil {
			return classifiedLine{}, err
		}
		return classifiedLine{class: classSectionHeader, name: name}, nil
	}

	return classifiedLine{class: classUnparsable}, nil
}

// =========================
// Public API
// =========================

// Parse reads INI input from r and returns the completed File. The only
// error paths are a read failure and a grammar-definition defect; unparsable
// lines are skipped with a warning.
func Parse(r io.Reader) (*File, error) {
	p := &parser{
		scanner: bufio.NewScanner(r),
		file:    NewFileBuilder(),
		cur:     NewSectionBuilder(GlobalSection()),
	}

	for p.scanner.Scan() {
		line := strings.TrimSpace(p.scanner.Text())
		p.lineNo++

		if err := p.parseLine(line); err != nil {
			return nil, err
		}
	}

	if err := p.scanner.Err(); err != nil {
		return nil, err
	}

	flushSection(p.file, p.cur)
	return p.file.Build(), nil
}

// =========================
// Parser Implementation
// =========================

type parser struct {
	scanner *bufio.Scanner
	file    *FileBuilder
	cur     *SectionBuilder
	lineNo  int
}

func (p *parser) parseLine(line string) error {
	slog.Debug("parsing line", "line", line, "no", p.lineNo)

	cl, err := classifyLine(line)
	if err != nil {
		return p.errf(err)
	}

	switch cl.class {
	case classBlank:
		// no state change
	case classKeyValue:
		p.cur.AddEntry(Entry{Key: cl.key, Value: cl.value})
	case classSectionHeader:
		flushSection(p.file, p.cur)
		p.cur = NewSectionBuilder(NamedSection(cl.name))
	case classUnparsable:
		slog.Warn("skipping unparsable non-empty line", "line", line, "no", p.lineNo)
	}
	return nil
}

func (p *parser) errf(err error) error {
	return fmt.Errorf("ini:%d: %w", p.lineNo, err)
}
