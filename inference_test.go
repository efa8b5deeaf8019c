package chords

import "testing"

func TestDecodePitchClassSetDirectMembers(t *testing.T) {
	pcs := NewPitchClassSet(pc0, pc4, pc7, pc10)
	out := DecodePitchClassSet(pcs)
	for _, want := range []Interval{Unison, MajorThird, PerfectFifth, MinorSeventh} {
		if !out.Contains(want) {
			t.Errorf("DecodePitchClassSet(%v) missing %v", pcs, want)
		}
	}
}

func TestDecodePitchClassSetMinorThirdVsSharpNinth(t *testing.T) {
	// pc3 alone, with no major third present, reads as a minor third.
	minor := DecodePitchClassSet(NewPitchClassSet(pc0, pc3, pc7))
	if !minor.Contains(MinorThird) {
		t.Errorf("DecodePitchClassSet with bare pc3 should resolve MinorThird, got %v", minor)
	}
	if minor.Contains(SharpNinth) {
		t.Errorf("DecodePitchClassSet with bare pc3 should not resolve SharpNinth, got %v", minor)
	}

	// pc3 alongside an actual major third reads as a sharp ninth instead.
	sharp9 := DecodePitchClassSet(NewPitchClassSet(pc0, pc4, pc3, pc7))
	if !sharp9.Contains(SharpNinth) {
		t.Errorf("DecodePitchClassSet with pc3+pc4 should resolve SharpNinth, got %v", sharp9)
	}
	if sharp9.Contains(MinorThird) {
		t.Errorf("DecodePitchClassSet with pc3+pc4 should not resolve MinorThird, got %v", sharp9)
	}
}

func TestDecodePitchClassSetSharpElevenVsFlatFive(t *testing.T) {
	// pc6 with no perfect fifth present reads as a diminished fifth.
	dim5 := DecodePitchClassSet(NewPitchClassSet(pc0, pc4, pc6))
	if !dim5.Contains(DiminishedFifth) {
		t.Errorf("DecodePitchClassSet with pc6 and no pc7 should resolve DiminishedFifth, got %v", dim5)
	}

	// pc6 alongside a genuine perfect fifth reads as a sharp eleventh.
	sharp11 := DecodePitchClassSet(NewPitchClassSet(pc0, pc4, pc6, pc7))
	if !sharp11.Contains(SharpEleventh) {
		t.Errorf("DecodePitchClassSet with pc6+pc7 should resolve SharpEleventh, got %v", sharp11)
	}
}

func TestDecodePitchClassSetMajorSixVsDiminishedSeventh(t *testing.T) {
	// pc9 with a diminished fifth and minor third already present reads
	// as the diminished seventh, not a plain major sixth.
	dim7 := DecodePitchClassSet(NewPitchClassSet(pc0, pc3, pc6, pc9))
	if !dim7.Contains(DiminishedSeventh) {
		t.Errorf("DecodePitchClassSet with pc3+pc6+pc9 should resolve DiminishedSeventh, got %v", dim7)
	}

	// pc9 on a plain major triad reads as a sixth.
	sixth := DecodePitchClassSet(NewPitchClassSet(pc0, pc4, pc7, pc9))
	if !sixth.Contains(MajorSixth) {
		t.Errorf("DecodePitchClassSet with pc4+pc7+pc9 should resolve MajorSixth, got %v", sixth)
	}
}

func TestDecodePitchClassSetAugmentedFifthVsFlatThirteen(t *testing.T) {
	// pc8 with a seventh already present reads as a flat thirteenth.
	flat13 := DecodePitchClassSet(NewPitchClassSet(pc0, pc4, pc10, pc8))
	if !flat13.Contains(FlatThirteenth) {
		t.Errorf("DecodePitchClassSet with pc4+pc10+pc8 should resolve FlatThirteenth, got %v", flat13)
	}

	// pc8 on a bare major triad with no seventh reads as an augmented fifth.
	aug := DecodePitchClassSet(NewPitchClassSet(pc0, pc4, pc8))
	if !aug.Contains(AugmentedFifth) {
		t.Errorf("DecodePitchClassSet with pc4+pc8 should resolve AugmentedFifth, got %v", aug)
	}

	// pc8 with neither a third nor a seventh reads as a plain minor sixth.
	minor6 := DecodePitchClassSet(NewPitchClassSet(pc0, pc7, pc8))
	if !minor6.Contains(MinorSixth) {
		t.Errorf("DecodePitchClassSet with pc7+pc8 should resolve MinorSixth, got %v", minor6)
	}
}

func TestInferFromMIDIMajorTriad(t *testing.T) {
	names := InferFromMIDI([]uint8{60, 64, 67})
	if len(names) == 0 {
		t.Fatalf("InferFromMIDI returned no candidates")
	}
	if names[0] != "C" {
		t.Errorf("InferFromMIDI([60,64,67])[0] = %q, want \"C\"", names[0])
	}
}

func TestInferFromMIDIAnnotatesBassOnLaterCandidates(t *testing.T) {
	names := InferFromMIDI([]uint8{60, 64, 67})
	for i, name := range names {
		if i == 0 {
			continue
		}
		if !containsSlash(name) {
			t.Errorf("InferFromMIDI candidate %d = %q, want a \"/<bass>\" annotation", i, name)
		}
	}
}

func TestInferFromMIDIEmptyInput(t *testing.T) {
	if got := InferFromMIDI(nil); got != nil {
		t.Errorf("InferFromMIDI(nil) = %v, want nil", got)
	}
}

func TestInferFromMIDIDropsDuplicateIntervalSets(t *testing.T) {
	names := InferFromMIDI([]uint8{60, 67})
	seen := map[string]bool{}
	for _, n := range names {
		if seen[n] {
			t.Errorf("InferFromMIDI([60,67]) produced duplicate name %q in %v", n, names)
		}
		seen[n] = true
	}
}

func containsSlash(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '/' {
			return true
		}
	}
	return false
}

func TestRoundTripParseAndInferMajorTriad(t *testing.T) {
	c := parseChordOrFatal(t, "C")
	codes := make([]uint8, len(c.Notes))
	for i, n := range c.Notes {
		codes[i] = uint8(60 + n.MustSemitone())
	}
	names := InferFromMIDI(codes)
	if len(names) == 0 || names[0] != "C" {
		t.Errorf("round trip InferFromMIDI(Parse(\"C\").Notes) = %v, want first candidate \"C\"", names)
	}
}
