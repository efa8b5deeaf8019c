package chords

import "testing"

func parseOrFatal(t *testing.T, input string) *AST {
	t.Helper()
	ast, errs := NewParser().Parse(input)
	if errs != nil {
		t.Fatalf("Parse(%q) returned unexpected errors: %v", input, errs)
	}
	return ast
}

func TestParseRootAccidentals(t *testing.T) {
	cases := []struct {
		input string
		root  Note
	}{
		{"C", NewNote(C, Natural)},
		{"C#", NewNote(C, Sharp)},
		{"Cb", NewNote(C, Flat)},
		{"C♭", NewNote(C, Flat)},
		{"G#7", NewNote(G, Sharp)},
	}
	for _, tc := range cases {
		ast := parseOrFatal(t, tc.input)
		if ast.Root != tc.root {
			t.Errorf("Parse(%q).Root = %v, want %v", tc.input, ast.Root, tc.root)
		}
	}
}

func TestParseMissingRootNote(t *testing.T) {
	_, errs := NewParser().Parse("7")
	if errs == nil {
		t.Fatalf("expected an error parsing \"7\"")
	}
	if errs.Errors[0].Kind != ErrMissingRootNote {
		t.Errorf("Parse(\"7\") error = %v, want ErrMissingRootNote", errs.Errors[0].Kind)
	}
}

func TestParseDim7Folding(t *testing.T) {
	// Dim immediately followed by Extension(7) folds to a single Dim7
	// expression, whether spelled with the word or the degree symbol.
	for _, input := range []string{"Cdim7", "C°7", "Co7"} {
		ast := parseOrFatal(t, input)
		if len(ast.Expressions) != 1 || ast.Expressions[0].Kind != ExpDim7 {
			t.Errorf("Parse(%q).Expressions = %v, want a single ExpDim7", input, ast.Expressions)
		}
	}
}

func TestParseMaj7Folding(t *testing.T) {
	for _, input := range []string{"CMaj7", "CM7", "C^7", "CΔ7"} {
		ast := parseOrFatal(t, input)
		if len(ast.Expressions) != 1 || ast.Expressions[0].Kind != ExpMaj7 {
			t.Errorf("Parse(%q).Expressions = %v, want a single ExpMaj7", input, ast.Expressions)
		}
	}
}

func TestParseNonAdjacentMaj7Folding(t *testing.T) {
	// "CMaj9" has no literal "7" next to "Maj", but the teacher's own
	// pairing fold still reaches across the Extension(9) expression: the
	// dangling Maj and a later, unrelated Extension(7) pair up if one
	// shows up anywhere in the token stream. Use a case with the 7
	// genuinely elsewhere instead: "CMaj(add7)".
	ast := parseOrFatal(t, "CMaj(add7)")
	foundMaj7 := false
	for _, e := range ast.Expressions {
		if e.Kind == ExpMaj7 {
			foundMaj7 = true
		}
	}
	if !foundMaj7 {
		t.Errorf("Parse(\"CMaj(add7)\").Expressions = %v, want a folded ExpMaj7", ast.Expressions)
	}
}

func TestParseSusDefaultsToFourth(t *testing.T) {
	ast := parseOrFatal(t, "Csus")
	if len(ast.Expressions) != 1 || ast.Expressions[0].Kind != ExpSus || ast.Expressions[0].Interval != PerfectFourth {
		t.Errorf("Parse(\"Csus\").Expressions = %v, want a bare Sus{PerfectFourth}", ast.Expressions)
	}
}

func TestParseSusWithTarget(t *testing.T) {
	ast := parseOrFatal(t, "Csus2")
	if len(ast.Expressions) != 1 || ast.Expressions[0].Kind != ExpSus || ast.Expressions[0].Interval != MajorSecond {
		t.Errorf("Parse(\"Csus2\").Expressions = %v, want Sus{MajorSecond}", ast.Expressions)
	}
}

func TestParseOmitContext(t *testing.T) {
	ast := parseOrFatal(t, "C7(omit5)")
	var gotOmit bool
	for _, e := range ast.Expressions {
		if e.Kind == ExpOmit && e.Interval == PerfectFifth {
			gotOmit = true
		}
	}
	if !gotOmit {
		t.Errorf("Parse(\"C7(omit5)\").Expressions = %v, want ExpOmit{PerfectFifth}", ast.Expressions)
	}
}

func TestParseOmitMultipleAfterComma(t *testing.T) {
	ast := parseOrFatal(t, "C7(omit5,3)")
	var fifthOmitted, thirdOmitted bool
	for _, e := range ast.Expressions {
		if e.Kind == ExpOmit && e.Interval == PerfectFifth {
			fifthOmitted = true
		}
		if e.Kind == ExpOmit && e.Interval == MajorThird {
			thirdOmitted = true
		}
	}
	if !fifthOmitted || !thirdOmitted {
		t.Errorf("Parse(\"C7(omit5,3)\").Expressions = %v, want both fifth and third omitted", ast.Expressions)
	}
}

func TestParseAddContext(t *testing.T) {
	ast := parseOrFatal(t, "C7(add9,13)")
	var gotNinth, gotThirteenth bool
	for _, e := range ast.Expressions {
		if e.Kind == ExpAdd && e.Interval == Ninth {
			gotNinth = true
		}
		if e.Kind == ExpAdd && e.Interval == Thirteenth {
			gotThirteenth = true
		}
	}
	if !gotNinth || !gotThirteenth {
		t.Errorf("Parse(\"C7(add9,13)\").Expressions = %v, want Add{Ninth} and Add{Thirteenth}", ast.Expressions)
	}
}

func TestParseSlashBass(t *testing.T) {
	ast := parseOrFatal(t, "C/Ab")
	if len(ast.Expressions) != 1 || ast.Expressions[0].Kind != ExpSlashBass {
		t.Fatalf("Parse(\"C/Ab\").Expressions = %v, want a single ExpSlashBass", ast.Expressions)
	}
	want := NewNote(A, Flat)
	if ast.Expressions[0].Note != want {
		t.Errorf("Parse(\"C/Ab\") bass = %v, want %v", ast.Expressions[0].Note, want)
	}
}

func TestParseSlashNinthIsAddNinth(t *testing.T) {
	ast := parseOrFatal(t, "C/9")
	if len(ast.Expressions) != 1 || ast.Expressions[0].Kind != ExpAdd || ast.Expressions[0].Interval != Ninth {
		t.Errorf("Parse(\"C/9\").Expressions = %v, want Add{Ninth}", ast.Expressions)
	}
}

func TestParseNestedParenthesisError(t *testing.T) {
	_, errs := NewParser().Parse("C7(add9(add11))")
	if errs == nil {
		t.Fatalf("expected an error parsing nested parens")
	}
	var found bool
	for _, e := range errs.Errors {
		if e.Kind == ErrNestedParenthesis {
			found = true
		}
	}
	if !found {
		t.Errorf("Parse errors = %v, want ErrNestedParenthesis", errs.Errors)
	}
}

func TestParseUnexpectedClosingParenthesis(t *testing.T) {
	_, errs := NewParser().Parse("C7)")
	if errs == nil {
		t.Fatalf("expected an error parsing \"C7)\"")
	}
	if errs.Errors[0].Kind != ErrUnexpectedClosingParenthesis {
		t.Errorf("Parse(\"C7)\") error = %v, want ErrUnexpectedClosingParenthesis", errs.Errors[0].Kind)
	}
}

func TestParseMissingClosingParenthesis(t *testing.T) {
	_, errs := NewParser().Parse("C7(add9")
	if errs == nil {
		t.Fatalf("expected an error parsing an unterminated paren group")
	}
	var found bool
	for _, e := range errs.Errors {
		if e.Kind == ErrMissingClosingParenthesis {
			found = true
		}
	}
	if !found {
		t.Errorf("Parse errors = %v, want ErrMissingClosingParenthesis", errs.Errors)
	}
}

func TestParseUnexpectedNote(t *testing.T) {
	_, errs := NewParser().Parse("CDm")
	if errs == nil {
		t.Fatalf("expected an error parsing a second bare note")
	}
	var found bool
	for _, e := range errs.Errors {
		if e.Kind == ErrUnexpectedNote {
			found = true
		}
	}
	if !found {
		t.Errorf("Parse errors = %v, want ErrUnexpectedNote", errs.Errors)
	}
}

func TestParsePowerChord(t *testing.T) {
	ast := parseOrFatal(t, "C5")
	if len(ast.Expressions) != 1 || ast.Expressions[0].Kind != ExpPower {
		t.Errorf("Parse(\"C5\").Expressions = %v, want a single ExpPower", ast.Expressions)
	}
}
