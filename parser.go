package chords

// ctxKind is the parser's "what am I currently collecting for" state,
// used to route bare Extension/Sharp/Flat tokens to the right Exp
// constructor.
type ctxKind uint8

const (
	ctxNone ctxKind = iota
	ctxSus
	ctxOmit
	ctxAdd
)

// parserContext additionally tracks, for Omit/Add, whether a comma has
// activated the group (tokens before the first comma inside a paren
// group belong to the modifier that opened it; after a comma they
// belong to the group's own kind).
type parserContext struct {
	kind   ctxKind
	active bool
}

// Parser turns a token stream into an AST with a single left-to-right
// pass and one-token lookahead. Reuse a Parser across calls on one
// goroutine; Parse resets all mutable state before returning.
type Parser struct {
	tokens    []Token
	pos       int
	errs      []*ParserError
	parenOpen int
	ctx       parserContext
}

// NewParser returns a ready-to-use Parser.
func NewParser() *Parser { return &Parser{} }

// Reset restores the parser to its initial state, discarding any
// tokens, errors, paren depth or context left over from a previous
// call. Parse calls this itself, so Reset is only needed if a caller
// wants to abandon a parse mid-way and reuse the instance.
func (p *Parser) Reset() { p.cleanup() }

func (p *Parser) cleanup() {
	p.tokens = nil
	p.pos = 0
	p.errs = nil
	p.parenOpen = 0
	p.ctx = parserContext{}
}

func (p *Parser) cur() Token {
	if p.pos >= len(p.tokens) {
		return Token{Kind: TokEof, Pos: len(p.tokens)}
	}
	return p.tokens[p.pos]
}

func (p *Parser) advance() Token {
	t := p.cur()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return t
}

func (p *Parser) errorf(kind ErrorKind, tok Token) {
	p.errs = append(p.errs, &ParserError{Kind: kind, Pos: tok.Pos, Len: tok.Len})
}

// Parse lexes and parses input into an AST, or returns the accumulated
// ParserErrors on failure.
func (p *Parser) Parse(input string) (*AST, *ParserErrors) {
	p.cleanup()
	defer p.cleanup()
	lx := NewLexer()
	p.tokens = foldTokens(lx.Scan(input))

	ast := &AST{}
	root, ok := p.readRoot()
	if !ok {
		p.errs = append(p.errs, &ParserError{Kind: ErrMissingRootNote, Pos: p.cur().Pos, Len: 1})
		return nil, &ParserErrors{Origin: input, Errors: p.errs}
	}
	ast.Root = root

	p.readBody(ast)

	if p.parenOpen > 0 {
		p.errs = append(p.errs, &ParserError{Kind: ErrMissingClosingParenthesis, Pos: len(input), Len: 0})
	}

	if len(p.errs) > 0 {
		return nil, &ParserErrors{Origin: input, Errors: p.errs}
	}
	return ast, nil
}

func (p *Parser) readRoot() (Note, bool) {
	tok := p.advance()
	if tok.Kind != TokNote {
		return Note{}, false
	}
	note := Note{Letter: tok.Letter}
	switch p.cur().Kind {
	case TokSharp:
		note.Accidental = Sharp
		p.advance()
	case TokFlat:
		note.Accidental = Flat
		p.advance()
	}
	return note, true
}

// chordNotationTable maps (sign, numeral) pairs from the notation
// grammar to the interval they denote. sign is -1 (flat), 0 (natural)
// or +1 (sharp).
var chordNotationTable = map[[2]int]Interval{
	{-1, 2}: MinorSecond, {0, 2}: MajorSecond,
	{-1, 3}: MinorThird, {0, 3}: MajorThird,
	{0, 4}: PerfectFourth, {1, 4}: AugmentedFourth,
	{-1, 5}: DiminishedFifth, {0, 5}: PerfectFifth, {1, 5}: AugmentedFifth,
	{-1, 6}: MinorSixth, {0, 6}: MajorSixth,
	{-1, 7}: DiminishedSeventh, {0, 7}: MinorSeventh,
	{-1, 9}: FlatNinth, {0, 9}: Ninth, {1, 9}: SharpNinth,
	{0, 11}: Eleventh, {1, 11}: SharpEleventh,
	{-1, 13}: FlatThirteenth, {0, 13}: Thirteenth,
}

func fromChordNotation(sign, n int) (Interval, bool) {
	iv, ok := chordNotationTable[[2]int{sign, n}]
	return iv, ok
}

func (p *Parser) readBody(ast *AST) {
	for {
		tok := p.advance()
		switch tok.Kind {
		case TokEof:
			return
		case TokNote:
			p.errorf(ErrUnexpectedNote, tok)
		case TokSharp, TokFlat:
			p.modifier(ast, tok)
		case TokAug:
			if p.cur().Kind == TokExtension && p.cur().Num == 5 {
				p.advance()
			}
			ast.Expressions = append(ast.Expressions, Exp{Kind: ExpAug})
		case TokDim:
			if p.cur().Kind == TokExtension && p.cur().Num == 7 {
				p.advance()
				ast.Expressions = append(ast.Expressions, Exp{Kind: ExpDim7})
			} else {
				ast.Expressions = append(ast.Expressions, Exp{Kind: ExpDim})
			}
		case TokDim7:
			ast.Expressions = append(ast.Expressions, Exp{Kind: ExpDim7})
		case TokHalfDim:
			ast.Expressions = append(ast.Expressions, Exp{Kind: ExpHalfDim})
		case TokExtension:
			if tok.Num == 5 && p.ctx.kind == ctxNone {
				ast.Expressions = append(ast.Expressions, Exp{Kind: ExpPower})
				continue
			}
			iv, ok := fromChordNotation(0, tok.Num)
			if !ok {
				p.errorf(ErrInvalidExtension, tok)
				continue
			}
			p.addInterval(ast, iv, tok.Pos)
		case TokAdd:
			p.add(ast, tok)
		case TokOmit:
			p.omit(ast, tok)
		case TokAlt:
			ast.Expressions = append(ast.Expressions, Exp{Kind: ExpAlt})
		case TokSus:
			p.sus(ast)
		case TokMinor:
			ast.Expressions = append(ast.Expressions, Exp{Kind: ExpMinor})
		case TokHyphen:
			if p.cur().Kind == TokExtension && p.cur().Num == 5 {
				ext := p.advance()
				ast.Expressions = append(ast.Expressions, Exp{Kind: ExpExtension, Interval: DiminishedFifth, Pos: ext.Pos})
			} else {
				ast.Expressions = append(ast.Expressions, Exp{Kind: ExpMinor})
			}
		case TokMaj:
			ast.Expressions = append(ast.Expressions, Exp{Kind: ExpMaj})
		case TokMaj7:
			ast.Expressions = append(ast.Expressions, Exp{Kind: ExpMaj7})
		case TokSlash:
			p.slash(ast, tok)
			return
		case TokLParen:
			p.parenOpen++
			if p.parenOpen > 1 {
				p.errorf(ErrNestedParenthesis, tok)
			} else {
				p.ctx = parserContext{}
			}
		case TokRParen:
			if p.parenOpen == 0 {
				p.errorf(ErrUnexpectedClosingParenthesis, tok)
			} else {
				p.parenOpen--
				p.ctx = parserContext{}
			}
		case TokComma:
			switch p.ctx.kind {
			case ctxOmit, ctxAdd:
				p.ctx.active = true
			case ctxSus:
				p.ctx = parserContext{}
			}
		case TokBass:
			ast.Expressions = append(ast.Expressions, Exp{Kind: ExpBass})
		case TokIllegal:
			p.errorf(ErrIllegalToken, tok)
		}
	}
}

func (p *Parser) modifier(ast *AST, signTok Token) {
	sign := 1
	if signTok.Kind == TokFlat {
		sign = -1
	}
	ext := p.cur()
	if ext.Kind != TokExtension {
		p.errorf(ErrUnexpectedModifier, signTok)
		return
	}
	p.advance()
	iv, ok := fromChordNotation(sign, ext.Num)
	if !ok {
		p.errorf(ErrInvalidExtension, ext)
		return
	}
	p.addInterval(ast, iv, signTok.Pos)
}

// addInterval is the shared sink for every bare interval discovered in
// the body loop, dispatching on the active context (§4.4 add_interval).
func (p *Parser) addInterval(ast *AST, iv Interval, pos int) {
	switch {
	case p.ctx.kind == ctxSus:
		switch iv {
		case MinorSecond, MajorSecond, PerfectFourth, AugmentedFourth:
			ast.Expressions = append(ast.Expressions, Exp{Kind: ExpSus, Interval: iv})
		default:
			ast.Expressions = append(ast.Expressions,
				Exp{Kind: ExpSus, Interval: PerfectFourth},
				Exp{Kind: ExpExtension, Interval: iv, Pos: pos})
		}
		p.ctx = parserContext{}
	case p.ctx.kind == ctxOmit && p.ctx.active:
		ast.Expressions = append(ast.Expressions, Exp{Kind: ExpOmit, Interval: iv, Pos: pos})
	case p.ctx.kind == ctxAdd && p.ctx.active:
		ast.Expressions = append(ast.Expressions, Exp{Kind: ExpAdd, Interval: iv, Pos: pos})
	default:
		switch iv {
		case PerfectFourth:
			ast.Expressions = append(ast.Expressions, Exp{Kind: ExpSus, Interval: PerfectFourth})
		case AugmentedFourth:
			p.errs = append(p.errs, &ParserError{Kind: ErrInvalidExtension, Pos: pos, Len: 1})
		default:
			ast.Expressions = append(ast.Expressions, Exp{Kind: ExpExtension, Interval: iv, Pos: pos})
		}
	}
}

func (p *Parser) add(ast *AST, addTok Token) {
	sign := 0
	if p.cur().Kind == TokSharp {
		sign = 1
		p.advance()
	} else if p.cur().Kind == TokFlat {
		sign = -1
		p.advance()
	}
	switch {
	case p.cur().Kind == TokMaj7:
		tgt := p.advance()
		ast.Expressions = append(ast.Expressions, Exp{Kind: ExpAdd, Interval: MajorSeventh, Pos: tgt.Pos})
	case p.cur().Kind == TokExtension:
		tgt := p.advance()
		iv, ok := fromChordNotation(sign, tgt.Num)
		if !ok {
			p.errorf(ErrIllegalAddTarget, tgt)
			break
		}
		ast.Expressions = append(ast.Expressions, Exp{Kind: ExpAdd, Interval: iv, Pos: tgt.Pos})
	default:
		p.errorf(ErrMissingAddTarget, addTok)
	}
	if p.parenOpen > 0 {
		p.ctx = parserContext{kind: ctxAdd, active: false}
	}
}

func (p *Parser) omit(ast *AST, omitTok Token) {
	switch {
	case p.cur().Kind == TokExtension && p.cur().Num == 5:
		tgt := p.advance()
		ast.Expressions = append(ast.Expressions, Exp{Kind: ExpOmit, Interval: PerfectFifth, Pos: tgt.Pos})
	case p.cur().Kind == TokExtension && p.cur().Num == 3:
		tgt := p.advance()
		ast.Expressions = append(ast.Expressions, Exp{Kind: ExpOmit, Interval: MajorThird, Pos: tgt.Pos})
	default:
		p.errorf(ErrIllegalOrMissingOmitTarget, omitTok)
	}
	if p.parenOpen > 0 {
		p.ctx = parserContext{kind: ctxOmit, active: false}
	}
}

func (p *Parser) sus(ast *AST) {
	p.ctx = parserContext{kind: ctxSus}
	switch p.cur().Kind {
	case TokExtension, TokSharp, TokFlat:
		// left for addInterval to pick up once the target token arrives.
	default:
		ast.Expressions = append(ast.Expressions, Exp{Kind: ExpSus, Interval: PerfectFourth})
		p.ctx = parserContext{}
	}
}

func (p *Parser) slash(ast *AST, slashTok Token) {
	switch {
	case p.cur().Kind == TokExtension && p.cur().Num == 9:
		tgt := p.advance()
		ast.Expressions = append(ast.Expressions, Exp{Kind: ExpAdd, Interval: Ninth, Pos: tgt.Pos})
	case p.cur().Kind == TokNote:
		tgt := p.advance()
		note := Note{Letter: tgt.Letter}
		switch p.cur().Kind {
		case TokSharp:
			note.Accidental = Sharp
			p.advance()
		case TokFlat:
			note.Accidental = Flat
			p.advance()
		}
		ast.Expressions = append(ast.Expressions, Exp{Kind: ExpSlashBass, Note: note})
	default:
		p.errorf(ErrIllegalSlashNotation, slashTok)
		return
	}
	if p.cur().Kind != TokEof {
		p.errorf(ErrIllegalSlashNotation, p.cur())
	}
}

// foldTokens applies the two pre-processing folds of §4.4: adjacent
// Maj/Maj7+Extension(7) collapses to a single Maj7 token, and any
// (possibly non-adjacent) Dim/Extension(7) or Maj/Extension(7) pair
// collapses to Dim7/Maj7 respectively, earliest unmatched complement
// winning the pairing.
func foldTokens(tokens []Token) []Token {
	tokens = foldAdjacentMaj7(tokens)
	tokens = foldPair(tokens, TokDim, TokDim7)
	tokens = foldPair(tokens, TokMaj, TokMaj7)
	return tokens
}

func foldAdjacentMaj7(tokens []Token) []Token {
	out := make([]Token, 0, len(tokens))
	for i := 0; i < len(tokens); i++ {
		t := tokens[i]
		if (t.Kind == TokMaj || t.Kind == TokMaj7) && i+1 < len(tokens) &&
			tokens[i+1].Kind == TokExtension && tokens[i+1].Num == 7 {
			out = append(out, Token{Kind: TokMaj7, Pos: t.Pos, Len: t.Len + tokens[i+1].Len})
			i++
			continue
		}
		out = append(out, t)
	}
	return out
}

// foldPair pairs every unmatched matcher token with the earliest
// unmatched Extension(7) token (in either order of appearance) and
// replaces both with a single `insert`-kind token.
func foldPair(tokens []Token, matcher TokenKind, insert TokenKind) []Token {
	pendingMatcher := []int{}
	pendingExt := []int{}
	paired := make(map[int]int) // matcher/ext index -> its partner index
	for i, t := range tokens {
		switch {
		case t.Kind == matcher:
			if len(pendingExt) > 0 {
				j := pendingExt[0]
				pendingExt = pendingExt[1:]
				paired[i] = j
				paired[j] = i
			} else {
				pendingMatcher = append(pendingMatcher, i)
			}
		case t.Kind == TokExtension && t.Num == 7:
			if len(pendingMatcher) > 0 {
				j := pendingMatcher[0]
				pendingMatcher = pendingMatcher[1:]
				paired[i] = j
				paired[j] = i
			} else {
				pendingExt = append(pendingExt, i)
			}
		}
	}
	if len(paired) == 0 {
		return tokens
	}
	out := make([]Token, 0, len(tokens))
	consumed := make(map[int]bool)
	for i, t := range tokens {
		if consumed[i] {
			continue
		}
		if j, ok := paired[i]; ok {
			first, second := i, j
			if second < first {
				first, second = second, first
			}
			out = append(out, Token{Kind: insert, Pos: tokens[first].Pos, Len: tokens[second].Pos + tokens[second].Len - tokens[first].Pos})
			consumed[i] = true
			consumed[j] = true
			continue
		}
		out = append(out, t)
	}
	return out
}
