// Package command classifies one typed input line into the closed set of
// commands the transcription loop understands.
//
// The grammar is deliberately tiny:
//
//	:export              export the book as tab-separated text
//	:clear               discard all records
//	:<anything else>     unknown escape, rejected
//	<lhs>=<m1 m2 ...>    record marks for the current top record
//	<anything else>      fuzzy query against student names
package command

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind discriminates the parsed command variants.
type Kind int

const (
	// KindQuery is a plain query string used to re-sort the book.
	KindQuery Kind = iota
	// KindAssignMarks records a marks vector against the top record.
	KindAssignMarks
	// KindExport requests the tab-separated export view.
	KindExport
	// KindClear discards all records.
	KindClear
)

func (k Kind) String() string {
	switch k {
	case KindQuery:
		return "Query"
	case KindAssignMarks:
		return "AssignMarks"
	case KindExport:
		return "Export"
	case KindClear:
		return "Clear"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Command is one parsed input line. Query is set for KindQuery, Marks for
// KindAssignMarks; both are zero otherwise.
type Command struct {
	Kind  Kind
	Query string
	Marks []uint32
}

// MarksParseError indicates a marks-assignment line with a non-integer
// token or a wrong field count.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type MarksParseError struct {
	Input string
	cause error
}

func (e *MarksParseError) Error() string {
	return fmt.Sprintf("invalid marks input: %s", e.Input)
}

func (e *MarksParseError) Unwrap() error { return e.cause }

// UnknownCommandError indicates a leading-colon escape that is not one of
// the defined commands.
type UnknownCommandError struct {
	Input string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("undefined escape: %s", e.Input)
}

// Parse classifies a single input line. It is total: every line either
// maps to a Command or to a typed error; nothing panics.
func Parse(line string) (Command, error) {
	switch {
	case line == ":export":
		return Command{Kind: KindExport}, nil
	case line == ":clear":
		return Command{Kind: KindClear}, nil
	case strings.HasPrefix(line, ":"):
		return Command{}, &UnknownCommandError{Input: line}
	case strings.Contains(line, "="):
		parts := strings.Split(line, "=")
		if len(parts) != 2 {
			return Command{}, &MarksParseError{Input: line}
		}
		marks, err := parseMarks(parts[1])
		if err != nil {
			return Command{}, &MarksParseError{Input: line, cause: err}
		}
		return Command{Kind: KindAssignMarks, Marks: marks}, nil
	default:
		return Command{Kind: KindQuery, Query: line}, nil
	}
}

func parseMarks(s string) ([]uint32, error) {
	fields := strings.Fields(strings.TrimSpace(s))
	marks := make([]uint32, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseUint(f, 10, 32)
		if err != nil {
			return nil, err
		}
		marks = append(marks, uint32(v))
	}
	return marks, nil
}
