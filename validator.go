package chords

var expKindNames = map[ExpKind]string{
	ExpPower: "Power", ExpAlt: "Alt", ExpBass: "Bass", ExpMinor: "Minor",
	ExpDim7: "Dim7", ExpDim: "Dim", ExpHalfDim: "HalfDim", ExpSus: "Sus",
	ExpMaj: "Maj", ExpMaj7: "Maj7", ExpExtension: "Extension", ExpAdd: "Add",
	ExpAug: "Aug", ExpOmit: "Omit", ExpSlashBass: "SlashBass",
}

// invalidExtensionIntervals lists intervals that already denote a
// third or seventh and so cannot also appear as a bare Extension.
var invalidExtensionIntervals = map[Interval]bool{
	MinorSecond: true, MajorSecond: true, MinorThird: true, MajorThird: true,
	DiminishedSeventh: true, MajorSeventh: true,
}

// Validate runs the three accumulating checks of §4.6 over a parsed
// AST and its evaluated Descriptor, returning every diagnostic found
// (nil if the chord is accepted).
func Validate(ast *AST, d *Descriptor) []*ParserError {
	var errs []*ParserError

	errs = append(errs, validateExpressions(ast)...)
	errs = append(errs, validateExtensions(ast, d)...)
	errs = append(errs, validateConsecutiveSemitones(d)...)

	return errs
}

func validateExpressions(ast *AST) []*ParserError {
	var errs []*ParserError
	counts := map[int]int{}
	firstPos := map[int]int{}
	firstKind := map[int]ExpKind{}

	for _, e := range ast.Expressions {
		if err := e.Validate(); err != nil {
			errs = append(errs, err)
		}
		bucket := e.Priority()
		counts[bucket]++
		if counts[bucket] == 1 {
			firstPos[bucket] = e.Pos
			firstKind[bucket] = e.Kind
		}
	}

	for bucket, n := range counts {
		if bucket == dupBucket {
			continue
		}
		if n > 1 {
			errs = append(errs, &ParserError{
				Kind: ErrDuplicateModifier,
				Pos:  firstPos[bucket],
				Len:  1,
				Name: expKindNames[firstKind[bucket]],
			})
		}
	}
	return errs
}

func validateExtensions(ast *AST, d *Descriptor) []*ParserError {
	var errs []*ParserError

	seenSemitone := map[uint8]bool{}
	for _, e := range ast.Expressions {
		if e.Kind != ExpExtension {
			continue
		}
		if invalidExtensionIntervals[e.Interval] {
			errs = append(errs, &ParserError{Kind: ErrInvalidExtension, Pos: e.Pos, Len: 1})
			continue
		}
		st := e.Interval.Semitone()
		if seenSemitone[st] {
			errs = append(errs, &ParserError{Kind: ErrDuplicateExtension, Pos: e.Pos, Len: 1})
		}
		seenSemitone[st] = true
	}

	type conflictPair struct {
		a, b []Interval
		name string
	}
	pairs := []conflictPair{
		{[]Interval{Ninth}, []Interval{FlatNinth, SharpNinth}, "9"},
		{[]Interval{Eleventh}, []Interval{SharpEleventh}, "11"},
		{[]Interval{Thirteenth}, []Interval{FlatThirteenth}, "13"},
		{[]Interval{MajorSixth}, []Interval{MinorSixth}, "6"},
		{[]Interval{MajorThird}, []Interval{MinorThird}, "3"},
	}
	for _, pair := range pairs {
		if !setContainsAny(d.intervalSet, pair.a) {
			continue
		}
		if setContainsAny(d.intervalSet, pair.b) {
			errs = append(errs, &ParserError{Kind: ErrInconsistentExtension, Name: pair.name})
		}
	}
	return errs
}

func setContainsAny(s IntervalSet, ivs []Interval) bool {
	for _, iv := range ivs {
		if s.Contains(iv) {
			return true
		}
	}
	return false
}

// validateConsecutiveSemitones implements §4.6 check 3 over the
// display intervals reduced to a 12-bit pitch-class mask.
func validateConsecutiveSemitones(d *Descriptor) []*ParserError {
	var mask uint16
	nameBySemitone := map[uint8]string{}
	for _, iv := range d.displayIntervals {
		st := iv.Semitone() % 12
		mask |= 1 << st
		nameBySemitone[st] = iv.Notation()
	}
	for i := uint8(0); i < 12; i++ {
		a, b, c := i, (i+1)%12, (i+2)%12
		if mask&(1<<a) != 0 && mask&(1<<b) != 0 && mask&(1<<c) != 0 {
			return []*ParserError{{
				Kind:  ErrThreeConsecutiveSemitones,
				Names: []string{nameBySemitone[a], nameBySemitone[b], nameBySemitone[c]},
			}}
		}
	}
	return nil
}
