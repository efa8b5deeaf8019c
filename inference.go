package chords

// DecodePitchClassSet is the two-pass decoder of §4.9: it resolves the
// four chromatically ambiguous pitch-class pairs that a bare 12-tone
// reduction cannot tell apart on its own (minor third vs sharp ninth,
// sharp eleventh vs flat five, augmented fifth vs flat thirteen vs
// minor six, major six vs diminished seventh vs thirteen) using the
// other pitch classes already present as context.
func DecodePitchClassSet(pcs PitchClassSet) IntervalSet {
	var out IntervalSet

	direct := []Interval{Unison, MajorThird, PerfectFourth, PerfectFifth, MinorSeventh, MajorSeventh, FlatNinth, Ninth, Eleventh}
	for _, iv := range direct {
		if pcs.Contains(PitchClassOf(iv)) {
			out = out.Insert(iv)
		}
	}

	if pcs.Contains(PitchClassOf(MinorThird)) || pcs.Contains(PitchClassOf(SharpNinth)) {
		if out.Contains(MajorThird) {
			out = out.Insert(SharpNinth)
		} else {
			out = out.Insert(MinorThird)
		}
	}

	if pcs.Contains(PitchClassOf(AugmentedFourth)) || pcs.Contains(PitchClassOf(SharpEleventh)) {
		if out.Contains(PerfectFifth) {
			out = out.Insert(SharpEleventh)
		} else {
			out = out.Insert(DiminishedFifth)
		}
	}

	if pcs.Contains(PitchClassOf(MajorSixth)) || pcs.Contains(PitchClassOf(Thirteenth)) {
		switch {
		case out.Contains(MinorSeventh):
			out = out.Insert(Thirteenth)
		case out.Contains(DiminishedFifth) && out.Contains(MinorThird):
			out = out.Insert(DiminishedSeventh)
		default:
			out = out.Insert(MajorSixth)
		}
	}

	if pcs.Contains(PitchClassOf(AugmentedFifth)) || pcs.Contains(PitchClassOf(FlatThirteenth)) {
		switch {
		case out.Contains(MinorSeventh) || out.Contains(DiminishedSeventh) || out.Contains(MajorSixth):
			out = out.Insert(FlatThirteenth)
		case out.Contains(MajorThird):
			out = out.Insert(AugmentedFifth)
		default:
			out = out.Insert(MinorSixth)
		}
	}

	return out
}

func noteForPitchClass(semitone int) Note {
	row := noteMatcherTable[((semitone%12)+12)%12]
	return Note{Letter: row[0].letter, Accidental: row[0].acc}
}

// relativePitchClassSet builds the PitchClassSet every MIDI code in
// codes projects to relative to rootMIDI, reduced into the system's
// 24-wide universe (mod 24, so upper-octave extensions stay
// distinguishable from their triad-register counterparts).
func relativePitchClassSet(codes []uint8, rootMIDI int) PitchClassSet {
	var pcs PitchClassSet
	for _, c := range codes {
		rel := ((int(c)-rootMIDI)%24 + 24) % 24
		pcs = pcs.Insert(PitchClass(rel))
	}
	return pcs
}

// InferFromMIDI is the inverse of Parse (§4.10): for every distinct
// pitch class present, in first-appearance order, it tries that note
// as root and renders the resulting chord name, annotating every
// candidate but the first with "/<bass>" since the true lowest note
// stays fixed. Candidates that decode to the same interval set as one
// already emitted are dropped.
func InferFromMIDI(codes []uint8) []string {
	if len(codes) == 0 {
		return nil
	}

	var rootsPC, rootsMIDI []int
	seenRoot := map[int]bool{}
	for _, c := range codes {
		pc := int(c) % 12
		if !seenRoot[pc] {
			seenRoot[pc] = true
			rootsPC = append(rootsPC, pc)
			rootsMIDI = append(rootsMIDI, int(c))
		}
	}

	bassNote := noteForPitchClass(int(codes[0]) % 12)

	var names []string
	seenIntervalSet := map[IntervalSet]bool{}
	for i, rootPC := range rootsPC {
		pcs := relativePitchClassSet(codes, rootsMIDI[i])
		intervals := DecodePitchClassSet(pcs)
		if seenIntervalSet[intervals] {
			continue
		}
		seenIntervalSet[intervals] = true

		d := descriptorFromIntervalSet(intervals)
		quality := ClassifyQuality(PitchClassSetOf(intervals))
		rootNote := noteForPitchClass(rootPC)
		name := Normalise(rootNote, d, quality)
		if i > 0 {
			name += "/" + bassNote.String()
		}
		names = append(names, name)
	}
	return names
}

// descriptorFromIntervalSet builds a minimal Descriptor around an
// already-decoded interval set, for the inference path which skips the
// AST/expression-sweep machinery entirely.
func descriptorFromIntervalSet(intervals IntervalSet) *Descriptor {
	d := &Descriptor{intervalSet: intervals, classificationSet: intervals}
	d.intervals = intervals.SortedBySemitone()
	d.displayIntervals = d.intervals
	return d
}
