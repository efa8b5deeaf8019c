package chords

// ExpKind tags the variant of a parsed chord-modifier expression.
type ExpKind int

const (
	ExpPower ExpKind = iota
	ExpAlt
	ExpBass
	ExpMinor
	ExpDim7
	ExpDim
	ExpHalfDim
	ExpSus
	ExpMaj
	ExpMaj7
	ExpExtension
	ExpAdd
	ExpAug
	ExpOmit
	ExpSlashBass
)

// priority stabilises evaluation/validation order across the irregular
// grammar: expressions of different priority buckets may repeat
// freely, but two of the same non-Extension/Add/Omit bucket signal a
// duplicate modifier (§4.6).
var expPriority = map[ExpKind]int{
	ExpPower: 0, ExpAlt: 1, ExpBass: 2, ExpMinor: 3, ExpDim7: 4, ExpDim: 5,
	ExpHalfDim: 6, ExpSus: 7, ExpMaj: 8, ExpMaj7: 9, ExpExtension: 10,
	ExpAdd: 11, ExpAug: 12, ExpOmit: 13, ExpSlashBass: 14,
}

// dupBucket is the sentinel priority Extension/Add/Omit all share for
// duplicate-modifier detection, since any number of them may legally
// coexist.
const dupBucket = 1 << 16

// Exp is a single parsed chord-modifier expression. Only the fields
// relevant to Kind are populated: Interval for Sus/Extension/Add/Omit,
// Pos for Extension/Add/Omit (their source position, for diagnostics),
// Note for SlashBass.
type Exp struct {
	Kind     ExpKind
	Interval Interval
	Pos      int
	Note     Note
}

// Priority returns the expression's evaluation-order bucket, with
// Extension/Add/Omit folded into one shared bucket.
func (e Exp) Priority() int {
	switch e.Kind {
	case ExpExtension, ExpAdd, ExpOmit:
		return dupBucket
	default:
		return expPriority[e.Kind]
	}
}

// allowedAddIntervals are the only intervals Add{} may legally carry.
var allowedAddIntervals = map[Interval]bool{
	MajorSecond: true, MajorThird: true, PerfectFourth: true, MinorSixth: true,
	MajorSixth: true, MajorSeventh: true, FlatNinth: true, Ninth: true,
	SharpNinth: true, Eleventh: true, SharpEleventh: true, FlatThirteenth: true,
	Thirteenth: true,
}

var allowedOmitIntervals = map[Interval]bool{
	MajorThird: true, PerfectFifth: true,
}

// Validate rejects an expression that carries an interval outside its
// allowed set (§4.6 check 1). It returns nil when the expression is
// fine on its own terms (duplicate-bucket detection happens separately,
// across the whole expression list).
func (e Exp) Validate() *ParserError {
	switch e.Kind {
	case ExpAdd:
		if !allowedAddIntervals[e.Interval] {
			return &ParserError{Kind: ErrIllegalAddTarget, Pos: e.Pos, Len: 1}
		}
	case ExpOmit:
		if !allowedOmitIntervals[e.Interval] {
			return &ParserError{Kind: ErrIllegalOrMissingOmitTarget, Pos: e.Pos, Len: 1}
		}
	}
	return nil
}

// AST is the parser's output: a root and the ordered expression list
// the evaluator folds into an interval set. A slash bass, when
// present, rides along as an ExpSlashBass expression rather than its
// own field, matching the notation's treatment of '/' as just another
// modifier.
type AST struct {
	Root        Note
	Expressions []Exp
}
