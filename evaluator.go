package chords

// BaseForm is the triad/seventh skeleton a chord starts from before
// sus, alterations, extensions, omissions and adds are layered on.
type BaseForm int

const (
	FormMajor BaseForm = iota
	FormMinor
	FormDim
	FormHalfDim
	FormDim7
	FormPower
	FormBass
)

// extRank orders the three plain extensions for the "highest seen"
// comparison of §4.5 phase 6.
var extRank = map[Interval]int{Ninth: 1, Eleventh: 2, Thirteenth: 3}

// Descriptor is the evaluator's working state, populated by the
// expression sweep (phase 2) and then folded into a final interval
// set by phases 3-10.
type Descriptor struct {
	intervalSet IntervalSet
	baseForm    BaseForm
	majPresent  bool
	susInterval *Interval
	susKinds    map[Interval]bool // which raw Sus{I} targets were requested
	sixth       *Interval
	forcedSeventh *Interval
	maxExtension  *Interval
	alts   IntervalSet
	adds   []Interval
	omits  []Interval
	bass   *Note

	intervals        []Interval
	displayIntervals []Interval

	// classificationSet is the interval set as it stood right after
	// phase 6 (implied extensions), before phase 7's omits are applied.
	// The quality classifier and IsSus read from this snapshot rather
	// than the final interval set: an explicit or sus-triggered omit of
	// the third shouldn't make e.g. a Cmaj7sus2 read as a bare Power
	// chord just because its third is gone from the display tones.
	classificationSet IntervalSet
}

// Evaluate runs the deterministic build pipeline over ast, producing a
// Descriptor with its canonical and display interval lists populated.
func Evaluate(ast *AST) *Descriptor {
	d := &Descriptor{
		intervalSet: NewIntervalSet(Unison, MajorThird, PerfectFifth),
		baseForm:    FormMajor,
	}

	for _, e := range ast.Expressions {
		d.applyLocal(e)
	}

	d.updateTriad()
	d.applySus()
	d.applyAlterations()
	d.impliedExtensions()
	d.classificationSet = d.intervalSet
	d.applyOmits()
	d.applyAdds()
	d.prune()
	d.materialise()

	return d
}

func (d *Descriptor) applyLocal(e Exp) {
	switch e.Kind {
	case ExpMaj:
		d.majPresent = true
	case ExpMaj7:
		d.majPresent = true
		d.intervalSet = d.intervalSet.Insert(MajorSeventh)
	case ExpMinor:
		d.baseForm = FormMinor
	case ExpDim:
		d.baseForm = FormDim
	case ExpDim7:
		d.baseForm = FormDim7
	case ExpHalfDim:
		d.baseForm = FormHalfDim
	case ExpAlt:
		d.omits = append(d.omits, PerfectFifth)
		sev := MinorSeventh
		d.forcedSeventh = &sev
		d.alts = d.alts.Insert(FlatNinth).Insert(SharpNinth).Insert(SharpEleventh).Insert(FlatThirteenth)
	case ExpAug:
		d.alts = d.alts.Insert(AugmentedFifth)
	case ExpSus:
		d.omits = append(d.omits, MajorThird)
		if d.susKinds == nil {
			d.susKinds = map[Interval]bool{}
		}
		d.susKinds[e.Interval] = true
		switch e.Interval {
		case PerfectFourth:
			iv := PerfectFourth
			d.susInterval = &iv
		case AugmentedFourth:
			d.alts = d.alts.Insert(SharpEleventh)
		case MinorSecond:
			d.alts = d.alts.Insert(FlatNinth)
		case MajorSecond:
			d.alts = d.alts.Insert(Ninth)
		}
	case ExpExtension:
		switch e.Interval {
		case PerfectFourth, AugmentedFourth, DiminishedFifth, AugmentedFifth,
			FlatNinth, SharpNinth, SharpEleventh, FlatThirteenth:
			d.alts = d.alts.Insert(e.Interval)
		case MajorSixth, MinorSixth:
			iv := e.Interval
			d.sixth = &iv
		case MinorSeventh:
			sev := MinorSeventh
			d.forcedSeventh = &sev
			d.alts = d.alts.Insert(MinorSeventh)
		case Ninth, Eleventh, Thirteenth:
			if d.maxExtension == nil || extRank[e.Interval] > extRank[*d.maxExtension] {
				iv := e.Interval
				d.maxExtension = &iv
			}
		}
	case ExpAdd:
		d.adds = append(d.adds, e.Interval)
	case ExpOmit:
		d.omits = append(d.omits, e.Interval)
	case ExpPower:
		d.baseForm = FormPower
	case ExpBass:
		d.baseForm = FormBass
	case ExpSlashBass:
		n := e.Note
		d.bass = &n
	}
}

// updateTriad is phase 3: the base form rewrites the seeded triad.
func (d *Descriptor) updateTriad() {
	switch d.baseForm {
	case FormMajor:
	case FormMinor:
		d.intervalSet = d.intervalSet.Replace(MajorThird, MinorThird)
	case FormDim:
		d.intervalSet = d.intervalSet.Replace(MajorThird, MinorThird).Replace(PerfectFifth, DiminishedFifth)
	case FormHalfDim:
		d.intervalSet = d.intervalSet.Replace(MajorThird, MinorThird).Replace(PerfectFifth, DiminishedFifth)
		d.intervalSet = d.intervalSet.Insert(MinorSeventh)
	case FormDim7:
		d.intervalSet = d.intervalSet.Replace(MajorThird, MinorThird).Replace(PerfectFifth, DiminishedFifth)
		d.intervalSet = d.intervalSet.Insert(DiminishedSeventh)
	case FormPower:
		d.intervalSet = d.intervalSet.Remove(MajorThird)
	case FormBass:
		d.intervalSet = d.intervalSet.Remove(MajorThird).Remove(PerfectFifth)
	}
}

// applySus is phase 4.
func (d *Descriptor) applySus() {
	if d.susInterval == nil {
		return
	}
	d.intervalSet = d.intervalSet.Remove(MinorThird).Remove(MajorThird)
	d.intervalSet = d.intervalSet.Insert(*d.susInterval)
}

// applyAlterations is phase 5: AugmentedFifth/DiminishedFifth/
// FlatThirteenth replace PerfectFifth; everything else is inserted.
func (d *Descriptor) applyAlterations() {
	for _, alt := range d.alts.Slice() {
		switch alt {
		case AugmentedFifth, DiminishedFifth, FlatThirteenth:
			d.intervalSet = d.intervalSet.Replace(PerfectFifth, alt)
		default:
			d.intervalSet = d.intervalSet.Insert(alt)
		}
	}
}

// impliedExtensions is phase 6.
func (d *Descriptor) impliedExtensions() {
	if d.baseForm == FormMajor && d.maxExtension != nil && *d.maxExtension == Eleventh {
		d.intervalSet = d.intervalSet.Replace(MajorThird, PerfectFourth)
	}

	seventh := MinorSeventh
	if d.majPresent {
		seventh = MajorSeventh
	}
	if d.forcedSeventh != nil {
		seventh = *d.forcedSeventh
	}

	if d.maxExtension == nil {
		return
	}

	// The top extension itself is always present — it's what the chord
	// asked for. What's "implied unless blocked" below is everything
	// stacked beneath it.
	d.intervalSet = d.intervalSet.Insert(*d.maxExtension)

	hasSixth := d.intervalSet.Contains(MajorSixth) || d.intervalSet.Contains(MinorSixth) || d.sixth != nil

	switch *d.maxExtension {
	case Thirteenth:
		want := []Interval{Ninth, seventh}
		if d.baseForm != FormMajor {
			want = []Interval{Eleventh, Ninth, seventh}
		}
		for _, w := range want {
			if !d.intervalSet.Blocks(w) {
				d.intervalSet = d.intervalSet.Insert(w)
			}
		}
	case Eleventh:
		for _, w := range []Interval{Ninth, seventh} {
			if !d.intervalSet.Blocks(w) {
				d.intervalSet = d.intervalSet.Insert(w)
			}
		}
	case Ninth:
		if hasSixth {
			return
		}
		if !d.intervalSet.Blocks(seventh) {
			d.intervalSet = d.intervalSet.Insert(seventh)
		}
	}
}

// applyOmits is phase 7.
func (d *Descriptor) applyOmits() {
	for _, o := range d.omits {
		switch o {
		case PerfectFifth:
			d.intervalSet = d.intervalSet.Difference(fifthsSet)
		case MajorThird:
			d.intervalSet = d.intervalSet.Difference(thirdsSet)
		}
	}
}

// applyAdds is phase 8.
func (d *Descriptor) applyAdds() {
	for _, a := range d.adds {
		if a == FlatThirteenth {
			d.intervalSet = d.intervalSet.Remove(PerfectFifth)
		}
		d.intervalSet = d.intervalSet.Insert(a)
	}
	if d.sixth != nil {
		d.intervalSet = d.intervalSet.Insert(*d.sixth)
	}
}

// prune is phase 9: a sixth and a thirteenth never coexist, regardless
// of which sixth — a later "add b6" collapses an already-implied
// Thirteenth the same way an explicit "6" would.
func (d *Descriptor) prune() {
	if d.intervalSet.Contains(MajorSixth) || d.intervalSet.Contains(MinorSixth) {
		d.intervalSet = d.intervalSet.Remove(Thirteenth)
	}
}

// materialise is phase 10: intervals is the canonical sorted list,
// display substitutes FlatNinth/Ninth/SharpEleventh back to their
// sus-register spelling, but only when a matching Sus{I} expression
// (not merely a same-named alteration) was present.
func (d *Descriptor) materialise() {
	d.intervals = d.intervalSet.SortedBySemitone()

	display := make([]Interval, len(d.intervals))
	copy(display, d.intervals)
	if d.susKinds[MinorSecond] {
		display = substituteAll(display, FlatNinth, MinorSecond)
	}
	if d.susKinds[MajorSecond] {
		display = substituteAll(display, Ninth, MajorSecond)
	}
	if d.susKinds[AugmentedFourth] {
		display = substituteAll(display, SharpEleventh, AugmentedFourth)
	}
	d.displayIntervals = display
}

func substituteAll(intervals []Interval, from, to Interval) []Interval {
	out := make([]Interval, 0, len(intervals))
	for _, iv := range intervals {
		if iv == from {
			out = append(out, to)
			continue
		}
		out = append(out, iv)
	}
	return out
}
