package chords

// Interval is a labelled semitone distance from a chord's root. Its
// ordinal value doubles as a stable sort key matching the order the
// notation spells intervals in (thirds before fifths before sixths,
// and so on), which keeps IntervalSet iteration deterministic without
// a separate sort pass in most call sites.
type Interval uint8

const (
	Unison Interval = iota
	MinorSecond
	MajorSecond
	MinorThird
	MajorThird
	PerfectFourth
	AugmentedFourth
	DiminishedFifth
	PerfectFifth
	AugmentedFifth
	MinorSixth
	MajorSixth
	DiminishedSeventh
	MinorSeventh
	MajorSeventh
	Octave
	FlatNinth
	Ninth
	SharpNinth
	Eleventh
	SharpEleventh
	FlatThirteenth
	Thirteenth
	numIntervals
)

// IntDegree is the scale-degree an Interval projects onto: 1,2,3,4,5,6,7,9,11,13.
type IntDegree uint8

const (
	Root IntDegree = iota
	Second
	Third
	Fourth
	Fifth
	Sixth
	Seventh
	Ninth_
	Eleventh_
	Thirteenth_
	numDegrees
)

var numericByDegree = [numDegrees]int{
	Root: 1, Second: 2, Third: 3, Fourth: 4, Fifth: 5, Sixth: 6, Seventh: 7,
	Ninth_: 9, Eleventh_: 11, Thirteenth_: 13,
}

// Numeric returns the degree's actual scale-degree number (1,2,3,...,13).
func (d IntDegree) Numeric() int { return numericByDegree[d] }

var semitoneByInterval = [numIntervals]uint8{
	Unison:            0,
	MinorSecond:       1,
	MajorSecond:       2,
	MinorThird:        3,
	MajorThird:        4,
	PerfectFourth:     5,
	AugmentedFourth:   6,
	DiminishedFifth:   6,
	PerfectFifth:      7,
	AugmentedFifth:    8,
	MinorSixth:        8,
	MajorSixth:        9,
	DiminishedSeventh: 9,
	MinorSeventh:      10,
	MajorSeventh:      11,
	Octave:            12,
	FlatNinth:         13,
	Ninth:             14,
	SharpNinth:        15,
	Eleventh:          17,
	SharpEleventh:     18,
	FlatThirteenth:    20,
	Thirteenth:        21,
}

var degreeByInterval = [numIntervals]IntDegree{
	Unison:            Root,
	MinorSecond:       Second,
	MajorSecond:       Second,
	MinorThird:        Third,
	MajorThird:        Third,
	PerfectFourth:     Fourth,
	AugmentedFourth:   Fourth,
	DiminishedFifth:   Fifth,
	PerfectFifth:      Fifth,
	AugmentedFifth:    Fifth,
	MinorSixth:        Sixth,
	MajorSixth:        Sixth,
	DiminishedSeventh: Seventh,
	MinorSeventh:      Seventh,
	MajorSeventh:      Seventh,
	Octave:            Root,
	FlatNinth:         Ninth_,
	Ninth:             Ninth_,
	SharpNinth:        Ninth_,
	Eleventh:          Eleventh_,
	SharpEleventh:     Eleventh_,
	FlatThirteenth:    Thirteenth_,
	Thirteenth:        Thirteenth_,
}

var notationByInterval = [numIntervals]string{
	Unison:            "1",
	MinorSecond:       "b2",
	MajorSecond:       "2",
	MinorThird:        "b3",
	MajorThird:        "3",
	PerfectFourth:     "4",
	AugmentedFourth:   "#4",
	DiminishedFifth:   "b5",
	PerfectFifth:      "5",
	AugmentedFifth:    "#5",
	MinorSixth:        "b6",
	MajorSixth:        "6",
	DiminishedSeventh: "bb7",
	MinorSeventh:      "7",
	MajorSeventh:      "Ma7",
	Octave:            "8",
	FlatNinth:         "b9",
	Ninth:             "9",
	SharpNinth:        "#9",
	Eleventh:          "11",
	SharpEleventh:     "#11",
	FlatThirteenth:    "b13",
	Thirteenth:        "13",
}

// Semitone returns the semitone distance of the interval from the root.
func (i Interval) Semitone() uint8 { return semitoneByInterval[i] }

// Degree returns the scale degree the interval projects onto.
func (i Interval) Degree() IntDegree { return degreeByInterval[i] }

// Notation returns the canonical chord-notation string for the interval,
// e.g. "#9", "b13", "Ma7".
func (i Interval) Notation() string { return notationByInterval[i] }

func (i Interval) String() string { return i.Notation() }

// intervalConflicts lists, per interval, the other intervals that make it
// redundant when already present (used by the evaluator's implied
// extension step, phase 6 of §4.5).
var intervalConflicts = map[Interval][]Interval{
	Ninth:        {FlatNinth, SharpNinth},
	Eleventh:     {SharpEleventh},
	Thirteenth:   {FlatThirteenth},
	MinorSeventh: {DiminishedSeventh},
}

// IntervalSet is a fixed-universe set over Interval, backed by a
// bitmask for constant-time membership/union/intersection/difference.
type IntervalSet uint32

// NewIntervalSet builds a set from the given intervals.
func NewIntervalSet(intervals ...Interval) IntervalSet {
	var s IntervalSet
	for _, i := range intervals {
		s = s.Insert(i)
	}
	return s
}

func (s IntervalSet) Insert(i Interval) IntervalSet  { return s | (1 << i) }
func (s IntervalSet) Remove(i Interval) IntervalSet  { return s &^ (1 << i) }
func (s IntervalSet) Contains(i Interval) bool       { return s&(1<<i) != 0 }
func (s IntervalSet) Union(o IntervalSet) IntervalSet        { return s | o }
func (s IntervalSet) Intersection(o IntervalSet) IntervalSet { return s & o }
func (s IntervalSet) Difference(o IntervalSet) IntervalSet   { return s &^ o }
func (s IntervalSet) IsEmpty() bool                   { return s == 0 }
func (s IntervalSet) IsSubsetOf(o IntervalSet) bool   { return s&o == s }

// RemoveThenAdd unconditionally removes remove and inserts add.
func (s IntervalSet) RemoveThenAdd(remove, add Interval) IntervalSet {
	return s.Remove(remove).Insert(add)
}

// Replace returns a new set where every occurrence of target is
// swapped for dest; the receiver is unmodified.
func (s IntervalSet) Replace(target, dest Interval) IntervalSet {
	if !s.Contains(target) {
		return s
	}
	return s.Remove(target).Insert(dest)
}

// Slice returns the set's members in ascending Interval order
// (equivalently, ascending declaration order, which for the thirds/
// fifths/sevenths/extensions in this enum also sorts by semitone for
// same-priority groups — ties across register are broken explicitly
// by callers that need strict semitone order, see SortedBySemitone).
func (s IntervalSet) Slice() []Interval {
	out := make([]Interval, 0, 8)
	for i := Interval(0); i < numIntervals; i++ {
		if s.Contains(i) {
			out = append(out, i)
		}
	}
	return out
}

// SortedBySemitone returns the set's members ordered by ascending
// semitone distance from the root, the order §4.5 phase 10 calls
// "materialise".
func (s IntervalSet) SortedBySemitone() []Interval {
	out := s.Slice()
	// insertion sort: the sets involved are tiny (at most a dozen
	// members) so this avoids pulling in sort for a handful of swaps.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1].Semitone() > out[j].Semitone(); j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

// Blocks reports whether i is "blocked" (already implied) by the
// set: either i itself is present, or one of its conflicts is.
func (s IntervalSet) Blocks(i Interval) bool {
	if s.Contains(i) {
		return true
	}
	for _, c := range intervalConflicts[i] {
		if s.Contains(c) {
			return true
		}
	}
	return false
}

var thirdsSet = NewIntervalSet(MinorThird, MajorThird)
var fifthsSet = NewIntervalSet(DiminishedFifth, PerfectFifth, AugmentedFifth)

// IntDegreeSet is a fixed-universe set over IntDegree.
type IntDegreeSet uint16

func NewIntDegreeSet(degrees ...IntDegree) IntDegreeSet {
	var s IntDegreeSet
	for _, d := range degrees {
		s |= 1 << d
	}
	return s
}

func (s IntDegreeSet) Insert(d IntDegree) IntDegreeSet { return s | (1 << d) }
func (s IntDegreeSet) Contains(d IntDegree) bool       { return s&(1<<d) != 0 }
func (s IntDegreeSet) Union(o IntDegreeSet) IntDegreeSet { return s | o }
func (s IntDegreeSet) IsSubsetOf(o IntDegreeSet) bool    { return s&o == s }

// DegreesOf projects every member of an IntervalSet to its IntDegree.
func DegreesOf(s IntervalSet) IntDegreeSet {
	var out IntDegreeSet
	for _, i := range s.Slice() {
		out = out.Insert(i.Degree())
	}
	return out
}
