package chords

// TokenKind identifies the lexical category of a Token.
type TokenKind int

const (
	TokNote TokenKind = iota
	TokSharp
	TokFlat
	TokAug
	TokDim
	TokDim7
	TokHalfDim
	TokExtension
	TokAdd
	TokOmit
	TokAlt
	TokSus
	TokMinor
	TokMaj
	TokMaj7
	TokHyphen
	TokSlash
	TokLParen
	TokRParen
	TokComma
	TokBass
	TokIllegal
	TokEof
)

var tokenKindNames = map[TokenKind]string{
	TokNote: "Note", TokSharp: "Sharp", TokFlat: "Flat", TokAug: "Aug",
	TokDim: "Dim", TokDim7: "Dim7", TokHalfDim: "HalfDim",
	TokExtension: "Extension", TokAdd: "Add", TokOmit: "Omit", TokAlt: "Alt",
	TokSus: "Sus", TokMinor: "Minor", TokMaj: "Maj", TokMaj7: "Maj7",
	TokHyphen: "Hyphen", TokSlash: "Slash", TokLParen: "(", TokRParen: ")",
	TokComma: "Comma", TokBass: "Bass", TokIllegal: "Illegal", TokEof: "Eof",
}

func (k TokenKind) String() string { return tokenKindNames[k] }

// Token is (kind, start_byte, length) referencing the original input,
// plus kind-specific payload (Letter for TokNote, Num for TokExtension).
type Token struct {
	Kind   TokenKind
	Pos    int // 0-based byte offset into the original input
	Len    int
	Letter NoteLetter // valid when Kind == TokNote
	Num    int        // valid when Kind == TokExtension
}

// keywordTable is the lexer's longest-match-first dictionary for letter
// runs. Casing is enumerated explicitly rather than folded, since a bare
// "M" means Maj and a bare "m" means Minor — the table is only
// "case-insensitive" for the multi-letter spellings.
var keywordTable = map[string]TokenKind{
	"BASS": TokBass, "Bass": TokBass, "bass": TokBass,

	// A bare ASCII "b" is the alternative flat sign the grammar's root
	// and extension productions both allow alongside "♭" — it matches only
	// where no longer keyword starts at that "b", since longer entries
	// (bass/BASS/...) are tried first by the longest-match scan.
	"b": TokFlat,

	"MAJ": TokMaj, "Maj": TokMaj, "maj": TokMaj,
	"MAJOR": TokMaj, "Major": TokMaj, "major": TokMaj,
	"MA": TokMaj, "Ma": TokMaj, "ma": TokMaj, "M": TokMaj,

	"MIN": TokMinor, "Min": TokMinor, "min": TokMinor,
	"MINOR": TokMinor, "Minor": TokMinor, "minor": TokMinor,
	"MI": TokMinor, "Mi": TokMinor, "mi": TokMinor, "m": TokMinor,

	"SUS": TokSus, "Sus": TokSus, "sus": TokSus,

	"DIM": TokDim, "Dim": TokDim, "dim": TokDim, "diminished": TokDim,
	"O": TokDim, "o": TokDim, "°": TokDim,

	"ALT": TokAlt, "Alt": TokAlt, "alt": TokAlt,
	"AUG": TokAug, "Aug": TokAug, "aug": TokAug,
	"ADD": TokAdd, "Add": TokAdd, "add": TokAdd,

	"OMIT": TokOmit, "Omit": TokOmit, "omit": TokOmit,
	"NO": TokOmit, "No": TokOmit, "no": TokOmit,

	"A": TokNote, "B": TokNote, "C": TokNote, "D": TokNote,
	"E": TokNote, "F": TokNote, "G": TokNote,
}

func noteLetterFor(s string) (NoteLetter, bool) {
	if len(s) != 1 {
		return 0, false
	}
	return ParseNoteLetter(s[0])
}

var validExtensions = map[string]int{
	"2": 2, "3": 3, "4": 4, "5": 5, "6": 6, "7": 7, "9": 9, "11": 11, "13": 13,
}
