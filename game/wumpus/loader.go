package wumpus

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/beka-birhanu/vinom-wumpus/game"
)

// Record tags of the world format.
const (
	tagDimensions byte = 'M'
	tagAgent      byte = 'A'
	tagPit        byte = 'P'
	tagWumpus     byte = 'W'
	tagGold       byte = 'G'

	recordFields = 2
)

var (
	ErrUnknownTag        = errors.New("unknown record tag")
	ErrInvalidDigit      = errors.New("coordinate is not a digit")
	ErrFieldCount        = errors.New("record must have exactly two digits")
	ErrMissingDimensions = errors.New("world dimensions are missing")
	ErrDuplicateRecord   = errors.New("record may appear only once")
	ErrHazardousStart    = errors.New("agent starts on a hazard")
)

var (
	defaultStart = game.Coordinate{X: 1, Y: 1}

	// singletonRecordLabels names the tags that may appear at most once.
	singletonRecordLabels = map[byte]string{tagDimensions: "dimensions", tagAgent: "agent", tagWumpus: "wumpus"}
)

// ParseError reports the line a malformed record was found on.
type ParseError struct {
	Line int   // 1-based line number, 0 for whole-file problems.
	Err  error // Underlying cause.
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return e.Err.Error()
	}
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// record is one parsed line.
type record struct {
	line   int
	tag    byte
	fields [recordFields]int
}

func (r record) coordinate() game.Coordinate {
	return game.Coordinate{X: r.fields[0], Y: r.fields[1]}
}

// Load reads a world description from the file at path.
func Load(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}

// ParseString reads a world description held in memory.
func ParseString(s string) (*Scenario, error) {
	return Parse(strings.NewReader(s))
}

// Parse reads a world description.
//
// Each non-blank line is a tag followed by two digits: M (width, height), A (start),
// P (pit), W (wumpus) and G (gold). Records may come in any order; a missing A starts
// the agent at (1, 1).
func Parse(r io.Reader) (*Scenario, error) {
	var records []record
	seen := map[byte]int{}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		rec, err := parseRecord(lineNo, line)
		if err != nil {
			return nil, err
		}
		if label, single := singletonRecordLabels[rec.tag]; single {
			if first, dup := seen[rec.tag]; dup {
				return nil, &ParseError{Line: lineNo, Err: fmt.Errorf("%w: %s already given on line %d", ErrDuplicateRecord, label, first)}
			}
			seen[rec.tag] = lineNo
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return build(records)
}

// parseRecord splits a trimmed line into its tag and digit fields.
func parseRecord(lineNo int, line string) (record, error) {
	rec := record{line: lineNo, tag: line[0]}
	switch rec.tag {
	case tagDimensions, tagAgent, tagPit, tagWumpus, tagGold:
	default:
		return rec, &ParseError{Line: lineNo, Err: fmt.Errorf("%w: %q", ErrUnknownTag, line[0])}
	}

	digits := line[1:]
	if len(digits) != recordFields {
		return rec, &ParseError{Line: lineNo, Err: fmt.Errorf("%w: got %q", ErrFieldCount, digits)}
	}
	for i := 0; i < recordFields; i++ {
		ch := digits[i]
		if ch < '0' || ch > '9' {
			return rec, &ParseError{Line: lineNo, Err: fmt.Errorf("%w: %q", ErrInvalidDigit, ch)}
		}
		rec.fields[i] = int(ch - '0')
	}
	return rec, nil
}

// build validates the records against the declared dimensions and populates a world.
func build(records []record) (*Scenario, error) {
	var world *World
	for _, rec := range records {
		if rec.tag != tagDimensions {
			continue
		}
		w, err := New(rec.fields[0], rec.fields[1])
		if err != nil {
			return nil, &ParseError{Line: rec.line, Err: fmt.Errorf("%w: %v", ErrOutOfBounds, err)}
		}
		world = w
	}
	if world == nil {
		return nil, &ParseError{Err: ErrMissingDimensions}
	}

	scenario := &Scenario{World: world, Start: defaultStart}
	for _, rec := range records {
		pos := rec.coordinate()
		var err error
		switch rec.tag {
		case tagAgent:
			if !world.InBounds(pos) {
				err = fmt.Errorf("agent at %s: %w", pos, ErrOutOfBounds)
			}
			scenario.Start = pos
		case tagPit:
			err = world.AddPit(pos)
		case tagWumpus:
			err = world.SetWumpus(pos)
		case tagGold:
			err = world.AddGold(pos)
		}
		if err != nil {
			return nil, &ParseError{Line: rec.line, Err: err}
		}
	}

	if world.HasPit(scenario.Start) || world.HasWumpus(scenario.Start) {
		return nil, &ParseError{Err: fmt.Errorf("%w at %s", ErrHazardousStart, scenario.Start)}
	}
	return scenario, nil
}
