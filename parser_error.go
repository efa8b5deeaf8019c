package chords

import (
	"fmt"
	"strings"
)

// ErrorKind tags one of the diagnostic variants the lexer, parser,
// evaluator and validator can all append to the same error vector.
type ErrorKind int

const (
	ErrIllegalToken ErrorKind = iota
	ErrUnexpectedNote
	ErrDuplicateModifier
	ErrInconsistentExtension
	ErrDuplicateExtension
	ErrInvalidExtension
	ErrWrongExpressionTarget
	ErrUnexpectedModifier
	ErrMissingRootNote
	ErrThreeConsecutiveSemitones
	ErrMissingAddTarget
	ErrIllegalOrMissingOmitTarget
	ErrIllegalAddTarget
	ErrIllegalSlashNotation
	ErrUnexpectedClosingParenthesis
	ErrMissingClosingParenthesis
	ErrNestedParenthesis
)

var errorKindNames = map[ErrorKind]string{
	ErrIllegalToken:                 "IllegalToken",
	ErrUnexpectedNote:               "UnexpectedNote",
	ErrDuplicateModifier:            "DuplicateModifier",
	ErrInconsistentExtension:        "InconsistentExtension",
	ErrDuplicateExtension:           "DuplicateExtension",
	ErrInvalidExtension:             "InvalidExtension",
	ErrWrongExpressionTarget:        "WrongExpressionTarget",
	ErrUnexpectedModifier:           "UnexpectedModifier",
	ErrMissingRootNote:              "MissingRootNote",
	ErrThreeConsecutiveSemitones:    "ThreeConsecutiveSemitones",
	ErrMissingAddTarget:             "MissingAddTarget",
	ErrIllegalOrMissingOmitTarget:   "IllegalOrMissingOmitTarget",
	ErrIllegalAddTarget:             "IllegalAddTarget",
	ErrIllegalSlashNotation:         "IllegalSlashNotation",
	ErrUnexpectedClosingParenthesis: "UnexpectedClosingParenthesis",
	ErrMissingClosingParenthesis:    "MissingClosingParenthesis",
	ErrNestedParenthesis:            "NestedParenthesis",
}

func (k ErrorKind) String() string { return errorKindNames[k] }

// ParserError is a single diagnostic. Pos/Len reference the original
// input in byte offsets (0-based internally; VerboseDisplay and Error
// render 1-based, per §4.3/§6). Name and Names carry variant-specific
// payload (the duplicated modifier's label, the offending interval
// names, ...).
type ParserError struct {
	Kind  ErrorKind
	Pos   int
	Len   int
	Name  string
	Names []string
}

func (e *ParserError) Error() string {
	switch e.Kind {
	case ErrDuplicateModifier:
		return fmt.Sprintf("duplicate modifier %q at position %d", e.Name, e.Pos+1)
	case ErrInconsistentExtension:
		return fmt.Sprintf("inconsistent extension %q at position %d", e.Name, e.Pos+1)
	case ErrThreeConsecutiveSemitones:
		return fmt.Sprintf("three consecutive semitones: %s", strings.Join(e.Names, ", "))
	default:
		return fmt.Sprintf("%s at position %d", e.Kind, e.Pos+1)
	}
}

// VerboseDisplay brackets the offending codepoint(s) of origin around
// e's position, for command-line and log output.
func (e *ParserError) VerboseDisplay(origin string) string {
	if e.Pos < 0 || e.Pos >= len(origin) {
		return fmt.Sprintf("%s: %s", e.Error(), origin)
	}
	end := e.Pos + e.Len
	if end > len(origin) {
		end = len(origin)
	}
	if end <= e.Pos {
		end = e.Pos + 1
		if end > len(origin) {
			end = len(origin)
		}
	}
	return fmt.Sprintf("%s: %s[%s]%s", e.Error(), origin[:e.Pos], origin[e.Pos:end], origin[end:])
}

// ParserErrors aggregates every diagnostic from one failed parse. It
// implements error so callers can use errors.As/a type switch, or just
// print it.
type ParserErrors struct {
	Origin string
	Errors []*ParserError
}

func (pe *ParserErrors) Error() string {
	if len(pe.Errors) == 0 {
		return "chords: parse failed with no recorded errors"
	}
	parts := make([]string, len(pe.Errors))
	for i, e := range pe.Errors {
		parts[i] = e.VerboseDisplay(pe.Origin)
	}
	return strings.Join(parts, "; ")
}
