package chords

// Quality is the coarse classification a PitchClassSet resolves to.
type Quality int

const (
	QualityMajor Quality = iota
	QualityMajor6
	QualityMajor7
	QualityDominant7
	QualityMinor
	QualityMinor6
	QualityMinor7
	QualityMinorMaj7
	QualityAugmented
	QualityDiminished
	QualityDiminished7
	QualityPower
	QualityBass
)

var qualityNames = map[Quality]string{
	QualityMajor: "Major", QualityMajor6: "Major6", QualityMajor7: "Major7",
	QualityDominant7: "Dominant7", QualityMinor: "Minor", QualityMinor6: "Minor6",
	QualityMinor7: "Minor7", QualityMinorMaj7: "MinorMaj7",
	QualityAugmented: "Augmented", QualityDiminished: "Diminished",
	QualityDiminished7: "Diminished7", QualityPower: "Power", QualityBass: "Bass",
}

func (q Quality) String() string { return qualityNames[q] }

// Semitone-indexed pitch classes, named the way §4.7 refers to them.
const (
	pc0  = PitchClass(0)  // Unison
	pc3  = PitchClass(3)  // MinorThird
	pc4  = PitchClass(4)  // MajorThird
	pc5  = PitchClass(5)  // PerfectFourth
	pc6  = PitchClass(6)  // DiminishedFifth / AugmentedFourth
	pc7  = PitchClass(7)  // PerfectFifth
	pc8  = PitchClass(8)  // AugmentedFifth / MinorSixth
	pc9  = PitchClass(9)  // MajorSixth / DiminishedSeventh
	pc10 = PitchClass(10) // MinorSeventh
	pc11 = PitchClass(11) // MajorSeventh
	pc17 = PitchClass(17) // Eleventh
)

type qualityEntry struct {
	quality Quality
	set     PitchClassSet
}

// qualityTable is scanned top to bottom; the first set that is a
// subset of the input wins (§4.7).
var qualityTable = []qualityEntry{
	{QualityDominant7, NewPitchClassSet(pc4, pc10)},
	{QualityMinorMaj7, NewPitchClassSet(pc3, pc11)},
	{QualityMinor7, NewPitchClassSet(pc3, pc10)},
	{QualityMinor6, NewPitchClassSet(pc3, pc9)},
	{QualityMinor, NewPitchClassSet(pc3)},
	{QualityMajor6, NewPitchClassSet(pc4, pc9)},
	{QualityMajor7, NewPitchClassSet(pc4, pc11)},
	{QualityMajor, NewPitchClassSet(pc4)},
}

// ClassifyQuality implements §4.7: Augmented/Diminished/Diminished7 are
// checked first via their own predicates, then the table is scanned in
// order. None of the table's entries match a chord with no third at
// all — a sus substitution (PerfectFourth or an upper-register sus
// target), an explicit omit of the third, or the Major+Eleventh→
// PerfectFourth respelling all leave pc3/pc4 absent — so that case is
// resolved by whichever seventh is still present instead of falling
// straight to Power: a suspended dominant or major-seventh chord keeps
// its family. Only root+fifth alone, with nothing else at all, is a
// genuine power chord; anything with neither a third nor a fifth is
// Bass.
func ClassifyQuality(pcs PitchClassSet) Quality {
	if isAugmented(pcs) {
		return QualityAugmented
	}
	if isDiminished7(pcs) {
		return QualityDiminished7
	}
	if isDiminished(pcs) {
		return QualityDiminished
	}
	for _, entry := range qualityTable {
		if entry.set.IsSubsetOf(pcs) {
			return entry.quality
		}
	}
	switch {
	case pcs.Contains(pc11):
		return QualityMajor7
	case pcs.Contains(pc10):
		return QualityDominant7
	case !pcs.Contains(pc7):
		return QualityBass
	case pcs.IsSubsetOf(NewPitchClassSet(pc0, pc7)):
		return QualityPower
	default:
		return QualityMajor
	}
}

func isAugmented(pcs PitchClassSet) bool {
	req := NewPitchClassSet(pc4, pc8)
	excl := NewPitchClassSet(pc10, pc11)
	return req.IsSubsetOf(pcs) && pcs.IsDisjoint(excl) && !pcs.Contains(pc9)
}

func isDiminished(pcs PitchClassSet) bool {
	req := NewPitchClassSet(pc3, pc6)
	return req.IsSubsetOf(pcs) && !pcs.Contains(pc10)
}

func isDiminished7(pcs PitchClassSet) bool {
	req := NewPitchClassSet(pc3, pc6, pc9)
	return req.IsSubsetOf(pcs) && !pcs.Contains(pc10)
}

// IsSus reports whether a non-Power/Bass chord has no third but does
// have a PerfectFourth or an Eleventh present.
func IsSus(q Quality, pcs PitchClassSet) bool {
	if q == QualityPower || q == QualityBass {
		return false
	}
	if pcs.Contains(pc3) || pcs.Contains(pc4) {
		return false
	}
	return pcs.Contains(pc5) || pcs.Contains(pc17)
}
