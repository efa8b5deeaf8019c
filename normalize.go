package chords

import (
	"strings"
)

type qualityMask struct {
	extensions IntervalSet
	alterations IntervalSet
}

var genericAlterations = NewIntervalSet(DiminishedFifth, AugmentedFifth, MinorSixth, FlatNinth, SharpNinth, SharpEleventh, FlatThirteenth)

var qualityMasks = map[Quality]qualityMask{
	QualityPower: {},
	QualityBass:  {},
	QualityMajor: {
		extensions:  NewIntervalSet(Ninth, Thirteenth),
		alterations: genericAlterations,
	},
	QualityMajor7: {
		extensions:  NewIntervalSet(Ninth, Thirteenth),
		alterations: genericAlterations,
	},
	QualityDominant7: {
		extensions:  NewIntervalSet(Ninth, Thirteenth),
		alterations: genericAlterations,
	},
	QualityAugmented: {
		extensions:  NewIntervalSet(Ninth, Thirteenth),
		alterations: NewIntervalSet(DiminishedFifth, FlatNinth, SharpNinth, SharpEleventh, FlatThirteenth),
	},
	QualityMajor6: {
		extensions:  NewIntervalSet(Ninth, Thirteenth, MajorSeventh),
		alterations: genericAlterations,
	},
	QualityMinor: {
		extensions:  NewIntervalSet(Ninth, Thirteenth, Eleventh),
		alterations: genericAlterations,
	},
	QualityMinor7: {
		extensions:  NewIntervalSet(Ninth, Thirteenth, Eleventh),
		alterations: genericAlterations,
	},
	QualityMinorMaj7: {
		extensions:  NewIntervalSet(Ninth, Thirteenth, Eleventh),
		alterations: genericAlterations,
	},
	QualityMinor6: {
		extensions:  NewIntervalSet(Ninth, Thirteenth, Eleventh, MajorSeventh),
		alterations: genericAlterations,
	},
	QualityDiminished: {
		extensions:  NewIntervalSet(Ninth, Eleventh, Thirteenth, MajorSeventh),
		alterations: NewIntervalSet(AugmentedFifth, MinorSixth, FlatNinth, FlatThirteenth),
	},
	QualityDiminished7: {
		extensions:  NewIntervalSet(Ninth, Eleventh, Thirteenth, MajorSeventh),
		alterations: NewIntervalSet(AugmentedFifth, MinorSixth, FlatNinth, FlatThirteenth),
	},
}

// stackRequirement mirrors §4.5 phase 6's implied-extension table: the
// degrees a numeral's stack presupposes, used by the normaliser to
// decide whether that numeral alone can stand for the chord or needs
// an explicit add.
func stackRequirement(major bool, seventhDegree IntDegree, top Interval) IntDegreeSet {
	switch top {
	case Thirteenth:
		if major {
			return NewIntDegreeSet(Ninth_, seventhDegree)
		}
		return NewIntDegreeSet(Eleventh_, Ninth_, seventhDegree)
	case Eleventh:
		return NewIntDegreeSet(Ninth_, seventhDegree)
	case Ninth:
		return NewIntDegreeSet(seventhDegree)
	}
	return 0
}

// Normalise reconstructs the canonical printable chord name from a
// Descriptor and its classified Quality (§4.8).
func Normalise(root Note, d *Descriptor, q Quality) string {
	if q == QualityBass {
		return root.String() + "Bass"
	}

	fullSet := d.intervalSet
	// MajorSixth folds into Thirteenth's register so the degree-stack
	// arithmetic below treats "6" chords as carrying a top extension.
	maskSource := fullSet
	if fullSet.Contains(MajorSixth) {
		maskSource = maskSource.Remove(MajorSixth).Insert(Thirteenth)
	}

	mask := qualityMasks[q]
	extensions := maskSource.Intersection(mask.extensions)
	alterations := fullSet.Intersection(mask.alterations)

	isSus := IsSus(q, PitchClassSetOf(d.classificationSet))

	seventhDegree := MinorSeventh.Degree()
	if q == QualityMajor7 || q == QualityMinorMaj7 {
		seventhDegree = MajorSeventh.Degree()
	}
	isMajorFamily := q == QualityMajor || q == QualityMajor7 || q == QualityDominant7 ||
		q == QualityAugmented || q == QualityMajor6

	var modifierExt Interval
	hasModifierExt := false
	var adds []Interval

	majorSeventhExt := extensions.Contains(MajorSeventh)
	if majorSeventhExt {
		adds = append(adds, MajorSeventh)
	}

	if q == QualityDiminished || q == QualityDiminished7 {
		for _, iv := range []Interval{Ninth, Eleventh, Thirteenth} {
			if extensions.Contains(iv) {
				adds = append(adds, iv)
			}
		}
	} else {
		stackCandidates := []Interval{}
		for _, iv := range []Interval{Thirteenth, Eleventh, Ninth} {
			if extensions.Contains(iv) {
				stackCandidates = append(stackCandidates, iv)
			}
		}
		degrees := DegreesOf(fullSet)
		var implied IntDegreeSet
		for _, iv := range stackCandidates {
			need := stackRequirement(isMajorFamily, seventhDegree, iv)
			if need.IsSubsetOf(degrees) {
				modifierExt = iv
				hasModifierExt = true
				implied = need.Insert(iv.Degree())
				break
			}
		}
		for _, iv := range stackCandidates {
			if hasModifierExt && iv == modifierExt {
				continue
			}
			if hasModifierExt && implied.Contains(iv.Degree()) {
				continue
			}
			adds = append(adds, iv)
		}
	}

	ninthBareSuffix := false
	if (q == QualityMajor6 || q == QualityMinor6) && !hasModifierExt {
		for i, iv := range adds {
			if iv == Ninth {
				adds = append(adds[:i], adds[i+1:]...)
				ninthBareSuffix = true
				break
			}
		}
	}

	// A power chord's own name already says "no third" (the same reason
	// Bass short-circuits above); tagging it "(omit3)" on top is redundant.
	omit3 := q != QualityPower && !isSus && !fullSet.Contains(MinorThird) && !fullSet.Contains(MajorThird)
	omit5 := !setContainsAny(fullSet, []Interval{DiminishedFifth, PerfectFifth, AugmentedFifth}) &&
		!fullSet.Contains(FlatThirteenth)

	var b strings.Builder
	b.WriteString(root.String())

	modNotation := ""
	if hasModifierExt {
		modNotation = modifierExt.Notation()
	}

	switch q {
	case QualityMajor:
		// no prefix
	case QualityMajor6:
		b.WriteString("6")
		b.WriteString(modNotation)
	case QualityMajor7:
		if modNotation == "" {
			b.WriteString("Maj7")
		} else {
			b.WriteString("Maj")
			b.WriteString(modNotation)
		}
	case QualityDominant7:
		if modNotation == "" {
			b.WriteString("7")
		} else {
			b.WriteString(modNotation)
		}
	case QualityMinor:
		b.WriteString("min")
	case QualityMinor6:
		b.WriteString("min6")
		b.WriteString(modNotation)
	case QualityMinor7:
		if modNotation == "" {
			b.WriteString("min7")
		} else {
			b.WriteString("min")
			b.WriteString(modNotation)
		}
	case QualityMinorMaj7:
		if modNotation == "" {
			b.WriteString("minMaj7")
		} else {
			b.WriteString("minMaj")
			b.WriteString(modNotation)
		}
	case QualityAugmented:
		b.WriteString("+")
		b.WriteString(modNotation)
	case QualityDiminished:
		b.WriteString("dim")
	case QualityDiminished7:
		b.WriteString("dim7")
	case QualityPower:
		b.WriteString("5")
	}

	if isSus {
		b.WriteString("sus")
		if fullSet.Contains(MajorThird) {
			adds = append(adds, MajorThird)
		}
	}

	altList := alterations.SortedBySemitone()

	var tail []string
	for _, a := range altList {
		tail = append(tail, a.Notation())
	}
	for i, a := range adds {
		s := a.Notation()
		if i == 0 {
			s = "add" + s
		}
		tail = append(tail, s)
	}
	var omits []string
	if omit3 {
		omits = append(omits, "3")
	}
	if omit5 {
		omits = append(omits, "5")
	}
	for i, o := range omits {
		if i == 0 {
			tail = append(tail, "omit"+o)
		} else {
			tail = append(tail, o)
		}
	}

	if ninthBareSuffix {
		b.WriteString("9")
	}
	if len(tail) > 0 {
		b.WriteString("(")
		b.WriteString(strings.Join(tail, ","))
		b.WriteString(")")
	}

	return b.String()
}
