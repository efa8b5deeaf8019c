package chords

import (
	"unicode"
	"unicode/utf8"
)

// Lexer turns chord notation into a token stream. It is stateless
// between calls to Scan; the teacher's convention of a reusable,
// zero-field scanner struct is kept so callers can hold one instance
// without synchronisation concerns (see §5 of the design notes).
type Lexer struct{}

// NewLexer returns a ready-to-use Lexer.
func NewLexer() *Lexer { return &Lexer{} }

// Scan tokenises input, always terminating the stream with a TokEof
// sentinel whose position is one past the last byte.
func (lx *Lexer) Scan(input string) []Token {
	tokens := make([]Token, 0, len(input))
	i := 0
	n := len(input)
	for i < n {
		r, size := decodeRune(input[i:])
		switch r {
		case '#', '♯':
			tokens = append(tokens, Token{Kind: TokSharp, Pos: i, Len: size})
			i += size
		case '♭':
			tokens = append(tokens, Token{Kind: TokFlat, Pos: i, Len: size})
			i += size
		case '△', '^', 'Δ':
			tokens = append(tokens, Token{Kind: TokMaj7, Pos: i, Len: size})
			i += size
		case '-':
			tokens = append(tokens, Token{Kind: TokHyphen, Pos: i, Len: size})
			i += size
		case '°':
			tokens = append(tokens, Token{Kind: TokDim, Pos: i, Len: size})
			i += size
		case 'ø':
			tokens = append(tokens, Token{Kind: TokHalfDim, Pos: i, Len: size})
			i += size
		case '/':
			tokens = append(tokens, Token{Kind: TokSlash, Pos: i, Len: size})
			i += size
		case '+':
			tokens = append(tokens, Token{Kind: TokAug, Pos: i, Len: size})
			i += size
		case ',':
			tokens = append(tokens, Token{Kind: TokComma, Pos: i, Len: size})
			i += size
		case '(':
			tokens = append(tokens, Token{Kind: TokLParen, Pos: i, Len: size})
			i += size
		case ')':
			tokens = append(tokens, Token{Kind: TokRParen, Pos: i, Len: size})
			i += size
		case ' ':
			i += size
		default:
			start := i
			switch {
			case unicode.IsDigit(r):
				j := i + size
				for j < n {
					r2, s2 := decodeRune(input[j:])
					if !unicode.IsDigit(r2) {
						break
					}
					j += s2
				}
				tokens = lx.scanNumber(input[start:j], start, tokens)
				i = j
			case isASCIIAlpha(r):
				j := i + size
				for j < n {
					r2, s2 := decodeRune(input[j:])
					if !isASCIIAlpha(r2) {
						break
					}
					j += s2
				}
				tokens = lx.scanKeywords(input[start:j], start, tokens)
				i = j
			default:
				tokens = append(tokens, Token{Kind: TokIllegal, Pos: start, Len: size})
				i += size
			}
		}
	}
	tokens = append(tokens, Token{Kind: TokEof, Pos: n, Len: 0})
	return tokens
}

func decodeRune(s string) (rune, int) {
	return utf8.DecodeRuneInString(s)
}

func isASCIIAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// scanKeywords implements the longest-match-first, left-to-right scan
// over a run of letters: for "Cminomit" it matches the note "C", then
// "min", then "omit". Unmatched bytes emit Illegal.
func (lx *Lexer) scanKeywords(run string, pos int, tokens []Token) []Token {
	start := 0
	for start < len(run) {
		matched := false
		for end := len(run); end > start; end-- {
			sub := run[start:end]
			kind, ok := keywordTable[sub]
			if !ok {
				continue
			}
			tok := Token{Kind: kind, Pos: pos + start, Len: end - start}
			if kind == TokNote {
				tok.Letter, _ = noteLetterFor(sub)
			}
			tokens = append(tokens, tok)
			start = end
			matched = true
			break
		}
		if !matched {
			tokens = append(tokens, Token{Kind: TokIllegal, Pos: pos + start, Len: 1})
			start++
		}
	}
	return tokens
}

// scanNumber implements the digit-run shortening rule: the run is
// tried as an extension numeral, shrinking from the right one
// codepoint at a time until it matches {2,3,4,5,6,7,9,11,13}, with
// unmatched leading digits collected and emitted, in reverse
// discovery order, after every valid extension in the run.
func (lx *Lexer) scanNumber(run string, pos int, tokens []Token) []Token {
	start, end := 0, len(run)
	var illegal []int
	for start < len(run) {
		sub := run[start:end]
		if n, ok := validExtensions[sub]; ok {
			tokens = append(tokens, Token{Kind: TokExtension, Pos: pos + start, Len: len(sub), Num: n})
			start = end
			end = len(run)
			continue
		}
		if end > start {
			end--
		}
		if end == start {
			illegal = append(illegal, pos+start)
			end = len(run)
			start++
		}
	}
	for k := len(illegal) - 1; k >= 0; k-- {
		tokens = append(tokens, Token{Kind: TokIllegal, Pos: illegal[k], Len: 1})
	}
	return tokens
}
