package chords

import (
	"errors"
	"fmt"
)

// NoteLetter is one of the seven natural letter names.
type NoteLetter uint8

const (
	C NoteLetter = iota
	D
	E
	F
	G
	A
	B
)

var noteLetterNames = [7]string{"C", "D", "E", "F", "G", "A", "B"}

func (l NoteLetter) String() string { return noteLetterNames[l] }

// Index returns the letter's position in the C-D-E-F-G-A-B cycle,
// used by the letter-index spelling law (invariant 2 of the data model).
func (l NoteLetter) Index() int { return int(l) }

// Accidental modifies a NoteLetter's pitch.
type Accidental int8

const (
	Natural    Accidental = 0
	Sharp      Accidental = 1
	Flat       Accidental = -1
	DoubleSharp Accidental = 2
	DoubleFlat  Accidental = -2
)

func (a Accidental) String() string {
	switch a {
	case Natural:
		return ""
	case Sharp:
		return "#"
	case Flat:
		return "b"
	case DoubleSharp:
		return "𝄪"
	case DoubleFlat:
		return "𝄫"
	default:
		return ""
	}
}

var errDoubleAccidentalRoot = errors.New("chords: double sharp/flat roots are not allowed")

// Note is a spelled pitch: a letter plus an accidental.
type Note struct {
	Letter     NoteLetter
	Accidental Accidental
}

// NewNote builds a Note.
func NewNote(letter NoteLetter, acc Accidental) Note { return Note{Letter: letter, Accidental: acc} }

var naturalSemitone = [7]int{C: 0, D: 2, E: 4, F: 5, G: 7, A: 9, B: 11}

// Semitone returns the note's pitch relative to C, 0..11. Roots carrying
// a double sharp or double flat are rejected by the spelling layer, per
// §4.2 — Semitone reports an error for those instead of silently
// wrapping. Chord tones spelled by GetNote can carry a double
// accidental; roots and bass notes read by the parser never do.
func (n Note) Semitone() (int, error) {
	if n.Accidental == DoubleSharp || n.Accidental == DoubleFlat {
		return 0, fmt.Errorf("%w: %s", errDoubleAccidentalRoot, n)
	}
	return ((naturalSemitone[n.Letter] + int(n.Accidental)) + 12) % 12, nil
}

// MustSemitone panics if Semitone would error; for call sites that have
// already validated the note came from the lexer/parser, which never
// emits a double-accidental root.
func (n Note) MustSemitone() int {
	st, err := n.Semitone()
	if err != nil {
		panic(err)
	}
	return st
}

func (n Note) String() string {
	return n.Letter.String() + n.Accidental.String()
}

// noteSpelling is one candidate spelling in a NoteMatcher row.
type noteSpelling struct {
	letter NoteLetter
	acc    Accidental
}

// noteMatcherTable maps a pitch class 0..11 to its enharmonic spellings
// in preference order — the canonical enharmonic table of §4.2, with
// preferred spelling first (e.g. pc=1 prefers Db, then C#, then B##).
var noteMatcherTable = [12][]noteSpelling{
	0:  {{C, Natural}, {B, Sharp}, {D, DoubleFlat}},
	1:  {{D, Flat}, {C, Sharp}, {B, DoubleSharp}},
	2:  {{D, Natural}, {E, DoubleFlat}, {C, DoubleSharp}},
	3:  {{E, Flat}, {D, Sharp}, {F, DoubleFlat}},
	4:  {{E, Natural}, {F, Flat}, {D, DoubleSharp}},
	5:  {{F, Natural}, {E, Sharp}, {G, DoubleFlat}},
	6:  {{G, Flat}, {F, Sharp}, {E, DoubleSharp}},
	7:  {{G, Natural}, {F, DoubleSharp}, {A, DoubleFlat}},
	8:  {{A, Flat}, {G, Sharp}},
	9:  {{A, Natural}, {G, DoubleSharp}, {B, DoubleFlat}},
	10: {{B, Flat}, {A, Sharp}, {C, DoubleFlat}},
	11: {{B, Natural}, {A, DoubleSharp}, {C, Flat}},
}

func matcherRow(rootSemitone, exactSemitone int) []noteSpelling {
	return noteMatcherTable[((rootSemitone+exactSemitone)%12+12)%12]
}

// GetNote returns the unique enharmonic spelling of an interval above
// root whose letter-index is (root-letter-index + degree − 1) mod 7; if
// no row entry has that letter, the row's preferred (first) spelling is
// returned. exactSemitone is the interval's raw semitone distance
// (§4.1's Interval.Semitone, which may exceed 11 for ninths/elevenths/
// thirteenths — the matcher table reduces it mod 12 internally).
func GetNote(root Note, exactSemitone int, degree IntDegree) Note {
	row := matcherRow(root.MustSemitone(), exactSemitone)
	wantIndex := (root.Letter.Index() + degree.Numeric() - 1) % 7
	for _, cand := range row {
		if cand.letter.Index() == wantIndex {
			return Note{Letter: cand.letter, Accidental: cand.acc}
		}
	}
	return Note{Letter: row[0].letter, Accidental: row[0].acc}
}

// TransposeNote transposes n, spelled relative to the interval between
// from and to, to its preferred (degree-agnostic) spelling. Used for
// the bass note, which carries no scale degree of its own.
func TransposeNote(n, from, to Note) Note {
	diff := ((to.MustSemitone() - from.MustSemitone()) + 12) % 12
	row := matcherRow(n.MustSemitone(), diff)
	return Note{Letter: row[0].letter, Accidental: row[0].acc}
}

// ParseNoteLetter converts a single uppercase letter byte to a NoteLetter.
func ParseNoteLetter(b byte) (NoteLetter, bool) {
	switch b {
	case 'C':
		return C, true
	case 'D':
		return D, true
	case 'E':
		return E, true
	case 'F':
		return F, true
	case 'G':
		return G, true
	case 'A':
		return A, true
	case 'B':
		return B, true
	default:
		return 0, false
	}
}
