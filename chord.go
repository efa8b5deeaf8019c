package chords

import "encoding/json"

// Chord is the fully assembled result of a successful parse: root,
// optional slash-bass, spelled notes, semitone and degree lists,
// canonical and display interval lists, classified quality, the
// canonical rendered name, the original input, and whether the chord
// reads as a suspension. Every field is a copy; a Chord carries no
// reference back to the parser or evaluator that built it (§4.11).
type Chord struct {
	Root             Note
	Bass             *Note
	Notes            []Note
	Semitones        []int
	Degrees          []IntDegree
	Intervals        []Interval
	DisplayIntervals []Interval
	Quality          Quality
	Name             string
	Origin           string
	IsSus            bool
}

// Parse is the library's primary entrypoint: lex, parse, evaluate,
// validate and assemble input into a Chord, or report every
// accumulated diagnostic as a *ParserErrors (which implements error).
func Parse(input string) (*Chord, error) {
	p := NewParser()
	ast, errs := p.Parse(input)
	if errs != nil {
		return nil, errs
	}

	d := Evaluate(ast)
	if verrs := Validate(ast, d); len(verrs) > 0 {
		return nil, &ParserErrors{Origin: input, Errors: verrs}
	}

	return assemble(ast.Root, d, input), nil
}

func assemble(root Note, d *Descriptor, origin string) *Chord {
	pcs := PitchClassSetOf(d.classificationSet)
	quality := ClassifyQuality(pcs)
	isSus := IsSus(quality, pcs)
	name := Normalise(root, d, quality)

	notes := make([]Note, len(d.displayIntervals))
	degrees := make([]IntDegree, len(d.displayIntervals))
	semitones := make([]int, len(d.displayIntervals))
	for i, iv := range d.displayIntervals {
		notes[i] = GetNote(root, int(iv.Semitone()), iv.Degree())
		degrees[i] = iv.Degree()
		semitones[i] = int(iv.Semitone())
	}

	var bass *Note
	if d.bass != nil {
		b := *d.bass
		bass = &b
	}

	return &Chord{
		Root:             root,
		Bass:             bass,
		Notes:            notes,
		Semitones:        semitones,
		Degrees:          degrees,
		Intervals:        d.intervals,
		DisplayIntervals: d.displayIntervals,
		Quality:          quality,
		Name:             name,
		Origin:           origin,
		IsSus:            isSus,
	}
}

// TransposeTo produces a new Chord carrying the same intervals as c,
// respelled against newRoot (§6, §8 property 2). The original input
// string is not meaningful for the transposed chord, so Origin is
// cleared.
func (c *Chord) TransposeTo(newRoot Note) *Chord {
	d := descriptorFromIntervalSet(NewIntervalSet(c.Intervals...))
	d.displayIntervals = append([]Interval(nil), c.DisplayIntervals...)
	d.bass = c.Bass

	out := assemble(newRoot, d, "")
	if c.Bass != nil {
		b := TransposeNote(*c.Bass, c.Root, newRoot)
		out.Bass = &b
	}
	return out
}

type chordJSON struct {
	Root             string   `json:"root"`
	Bass             *string  `json:"bass,omitempty"`
	Notes            []string `json:"notes"`
	Semitones        []int    `json:"semitones"`
	Degrees          []int    `json:"degrees"`
	Intervals        []string `json:"intervals"`
	DisplayIntervals []string `json:"display_intervals"`
	Quality          string   `json:"quality"`
	Name             string   `json:"name"`
	Origin           string   `json:"origin"`
	IsSus            bool     `json:"is_sus"`
}

// ToJSON serialises the chord's public fields, per §6.
func (c *Chord) ToJSON() (string, error) {
	j := chordJSON{
		Root:             c.Root.String(),
		Notes:            make([]string, len(c.Notes)),
		Semitones:        c.Semitones,
		Degrees:          make([]int, len(c.Degrees)),
		Intervals:        make([]string, len(c.Intervals)),
		DisplayIntervals: make([]string, len(c.DisplayIntervals)),
		Quality:          c.Quality.String(),
		Name:             c.Name,
		Origin:           c.Origin,
		IsSus:            c.IsSus,
	}
	if c.Bass != nil {
		s := c.Bass.String()
		j.Bass = &s
	}
	for i, n := range c.Notes {
		j.Notes[i] = n.String()
	}
	for i, deg := range c.Degrees {
		j.Degrees[i] = deg.Numeric()
	}
	for i, iv := range c.Intervals {
		j.Intervals[i] = iv.Notation()
	}
	for i, iv := range c.DisplayIntervals {
		j.DisplayIntervals[i] = iv.Notation()
	}

	buf, err := json.Marshal(j)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}
