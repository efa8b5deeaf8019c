package chords

import "testing"

func kinds(tokens []Token) []TokenKind {
	out := make([]TokenKind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func assertKinds(t *testing.T, input string, want []TokenKind) {
	t.Helper()
	got := kinds(NewLexer().Scan(input))
	if len(got) != len(want) {
		t.Fatalf("Scan(%q) produced %d tokens %v, want %d %v", input, len(got), got, len(want), want)
	}
	for i, k := range want {
		if got[i] != k {
			t.Errorf("Scan(%q)[%d] = %v, want %v", input, i, got[i], k)
		}
	}
}

func TestScanBasicTokens(t *testing.T) {
	assertKinds(t, "C", []TokenKind{TokNote, TokEof})
	assertKinds(t, "C#", []TokenKind{TokNote, TokSharp, TokEof})
	assertKinds(t, "C♭", []TokenKind{TokNote, TokFlat, TokEof})
	assertKinds(t, "C-", []TokenKind{TokNote, TokHyphen, TokEof})
	assertKinds(t, "C°", []TokenKind{TokNote, TokDim, TokEof})
	assertKinds(t, "Cø", []TokenKind{TokNote, TokHalfDim, TokEof})
	assertKinds(t, "C/G", []TokenKind{TokNote, TokSlash, TokNote, TokEof})
	assertKinds(t, "C+", []TokenKind{TokNote, TokAug, TokEof})
}

func TestScanASCIIFlatSign(t *testing.T) {
	// A bare ASCII "b" immediately followed by a digit is the flat sign,
	// not the start of a keyword.
	assertKinds(t, "Cb9", []TokenKind{TokNote, TokFlat, TokExtension, TokEof})
	assertKinds(t, "C-b5", []TokenKind{TokNote, TokHyphen, TokFlat, TokExtension, TokEof})
	assertKinds(t, "C13b9", []TokenKind{TokNote, TokExtension, TokFlat, TokExtension, TokEof})

	// "bass"/"Bass"/"BASS" still win the longest-match scan over the
	// bare-letter flat entry.
	assertKinds(t, "C/Bass", []TokenKind{TokNote, TokSlash, TokBass, TokEof})
	assertKinds(t, "Cadd9bass", []TokenKind{TokNote, TokAdd, TokExtension, TokBass, TokEof})
}

func TestScanExtensionNumber(t *testing.T) {
	toks := NewLexer().Scan("9")
	if len(toks) != 2 || toks[0].Kind != TokExtension || toks[0].Num != 9 {
		t.Fatalf("Scan(\"9\") = %+v", toks)
	}
	toks = NewLexer().Scan("11")
	if len(toks) != 2 || toks[0].Kind != TokExtension || toks[0].Num != 11 {
		t.Fatalf("Scan(\"11\") = %+v", toks)
	}
	toks = NewLexer().Scan("13")
	if len(toks) != 2 || toks[0].Kind != TokExtension || toks[0].Num != 13 {
		t.Fatalf("Scan(\"13\") = %+v", toks)
	}
}

func TestScanDigitRunShortening(t *testing.T) {
	// "513" isn't itself a valid numeral; shrinking from the right finds
	// "5" first, then the remainder "13" is tried fresh and matches too.
	toks := NewLexer().Scan("513")
	if len(toks) != 3 {
		t.Fatalf("Scan(\"513\") = %+v, want 2 extensions + eof", toks)
	}
	if toks[0].Kind != TokExtension || toks[0].Num != 5 {
		t.Errorf("Scan(\"513\")[0] = %+v, want Extension(5)", toks[0])
	}
	if toks[1].Kind != TokExtension || toks[1].Num != 13 {
		t.Errorf("Scan(\"513\")[1] = %+v, want Extension(13)", toks[1])
	}
}

func TestScanIllegalDigitRun(t *testing.T) {
	// "15" and its sole prefix "1" both fail to match, so "1" is
	// recorded illegal and the scan restarts at "5", which matches; the
	// valid extension is appended as it's discovered, with the deferred
	// illegal byte trailing at the end of the run's token group.
	toks := NewLexer().Scan("15")
	var gotKinds []TokenKind
	for _, tok := range toks {
		gotKinds = append(gotKinds, tok.Kind)
	}
	want := []TokenKind{TokExtension, TokIllegal, TokEof}
	if len(gotKinds) != len(want) {
		t.Fatalf("Scan(\"15\") kinds = %v, want %v", gotKinds, want)
	}
	for i := range want {
		if gotKinds[i] != want[i] {
			t.Errorf("Scan(\"15\")[%d] = %v, want %v", i, gotKinds[i], want[i])
		}
	}
	if toks[0].Num != 5 {
		t.Errorf("Scan(\"15\") extension = %+v, want Num 5", toks[0])
	}
	if toks[1].Pos != 0 {
		t.Errorf("Scan(\"15\") illegal pos = %d, want 0", toks[1].Pos)
	}
}

func TestScanKeywordsLongestMatchFirst(t *testing.T) {
	toks := NewLexer().Scan("minomit")
	if len(toks) != 3 || toks[0].Kind != TokMinor || toks[1].Kind != TokOmit || toks[2].Kind != TokEof {
		t.Fatalf("Scan(\"minomit\") = %+v, want [Minor, Omit, Eof]", toks)
	}
}

func TestScanBareLetterKeywords(t *testing.T) {
	// A bare "M" is Maj, a bare "m" is Minor, case-sensitively.
	toks := NewLexer().Scan("M")
	if toks[0].Kind != TokMaj {
		t.Errorf("Scan(\"M\")[0].Kind = %v, want TokMaj", toks[0].Kind)
	}
	toks = NewLexer().Scan("m")
	if toks[0].Kind != TokMinor {
		t.Errorf("Scan(\"m\")[0].Kind = %v, want TokMinor", toks[0].Kind)
	}
	toks = NewLexer().Scan("O")
	if toks[0].Kind != TokDim {
		t.Errorf("Scan(\"O\")[0].Kind = %v, want TokDim", toks[0].Kind)
	}
}

func TestScanIllegalLetterRun(t *testing.T) {
	toks := NewLexer().Scan("xyz")
	for i := 0; i < 3; i++ {
		if toks[i].Kind != TokIllegal {
			t.Errorf("Scan(\"xyz\")[%d].Kind = %v, want TokIllegal", i, toks[i].Kind)
		}
	}
	if toks[3].Kind != TokEof {
		t.Errorf("Scan(\"xyz\")[3].Kind = %v, want TokEof", toks[3].Kind)
	}
}

func TestScanSpacesAreSkipped(t *testing.T) {
	toks := NewLexer().Scan("C maj7")
	var kindsGot []TokenKind
	for _, tok := range toks {
		kindsGot = append(kindsGot, tok.Kind)
	}
	want := []TokenKind{TokNote, TokMaj, TokExtension, TokEof}
	if len(kindsGot) != len(want) {
		t.Fatalf("Scan(\"C maj7\") kinds = %v, want %v", kindsGot, want)
	}
}

func TestScanEofPosition(t *testing.T) {
	toks := NewLexer().Scan("Cm")
	eof := toks[len(toks)-1]
	if eof.Kind != TokEof || eof.Pos != len("Cm") {
		t.Errorf("Eof token = %+v, want Pos %d", eof, len("Cm"))
	}
}
