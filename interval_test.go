package chords

import "testing"

func TestIntervalSemitone(t *testing.T) {
	cases := []struct {
		iv Interval
		st uint8
	}{
		{Unison, 0}, {MinorThird, 3}, {MajorThird, 4}, {PerfectFifth, 7},
		{MinorSeventh, 10}, {MajorSeventh, 11}, {Ninth, 14}, {Eleventh, 17},
		{Thirteenth, 21}, {FlatNinth, 13}, {SharpEleventh, 18}, {FlatThirteenth, 20},
	}
	for _, tc := range cases {
		if got := tc.iv.Semitone(); got != tc.st {
			t.Errorf("%v.Semitone() = %d, want %d", tc.iv, got, tc.st)
		}
	}
}

func TestIntervalDegree(t *testing.T) {
	cases := []struct {
		iv  Interval
		deg IntDegree
	}{
		{MinorThird, Third}, {MajorThird, Third}, {FlatNinth, Ninth_},
		{Ninth, Ninth_}, {SharpNinth, Ninth_}, {Eleventh, Eleventh_},
		{SharpEleventh, Eleventh_}, {Thirteenth, Thirteenth_}, {FlatThirteenth, Thirteenth_},
	}
	for _, tc := range cases {
		if got := tc.iv.Degree(); got != tc.deg {
			t.Errorf("%v.Degree() = %v, want %v", tc.iv, got, tc.deg)
		}
	}
}

func TestIntervalNotation(t *testing.T) {
	cases := []struct {
		iv   Interval
		want string
	}{
		{MajorThird, "3"}, {MinorThird, "b3"}, {PerfectFifth, "5"},
		{DiminishedFifth, "b5"}, {AugmentedFifth, "#5"}, {MajorSeventh, "Ma7"},
		{Ninth, "9"}, {FlatNinth, "b9"}, {SharpNinth, "#9"},
		{Eleventh, "11"}, {SharpEleventh, "#11"}, {Thirteenth, "13"}, {FlatThirteenth, "b13"},
		{DiminishedSeventh, "bb7"},
	}
	for _, tc := range cases {
		if got := tc.iv.Notation(); got != tc.want {
			t.Errorf("%v.Notation() = %q, want %q", tc.iv, got, tc.want)
		}
	}
}

func TestIntervalSetBasics(t *testing.T) {
	s := NewIntervalSet(Unison, MajorThird, PerfectFifth)
	if !s.Contains(MajorThird) {
		t.Fatalf("expected set to contain MajorThird")
	}
	if s.Contains(MinorThird) {
		t.Fatalf("did not expect set to contain MinorThird")
	}
	s2 := s.Replace(MajorThird, MinorThird)
	if s2.Contains(MajorThird) || !s2.Contains(MinorThird) {
		t.Fatalf("Replace did not swap MajorThird for MinorThird: %v", s2.Slice())
	}
	if s.Contains(MinorThird) {
		t.Fatalf("Replace must not mutate the receiver")
	}

	// Replace is a no-op when the target isn't present.
	s3 := s2.Replace(MajorThird, FlatThirteenth)
	if !s3.Contains(PerfectFifth) || s3.Contains(FlatThirteenth) {
		t.Fatalf("Replace on absent target should no-op, got %v", s3.Slice())
	}

	d := s.Difference(NewIntervalSet(MajorThird))
	if d.Contains(MajorThird) {
		t.Fatalf("Difference did not remove MajorThird")
	}
}

func TestIntervalSetSortedBySemitone(t *testing.T) {
	s := NewIntervalSet(Thirteenth, Unison, MinorThird, MinorSeventh, Ninth)
	got := s.SortedBySemitone()
	want := []Interval{Unison, MinorThird, MinorSeventh, Ninth, Thirteenth}
	if len(got) != len(want) {
		t.Fatalf("SortedBySemitone length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SortedBySemitone()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestIntervalSetBlocks(t *testing.T) {
	s := NewIntervalSet(Unison, MajorThird, PerfectFifth, FlatNinth)
	if !s.Blocks(Ninth) {
		t.Errorf("FlatNinth should block a plain Ninth implication")
	}
	if s.Blocks(Eleventh) {
		t.Errorf("nothing in the set should block Eleventh")
	}
	s2 := NewIntervalSet(DiminishedSeventh)
	if !s2.Blocks(MinorSeventh) {
		t.Errorf("DiminishedSeventh should block an implied MinorSeventh")
	}
}

func TestPitchClassSetOf(t *testing.T) {
	s := NewIntervalSet(Unison, MajorThird, PerfectFifth, Ninth)
	pcs := PitchClassSetOf(s)
	for _, iv := range []Interval{Unison, MajorThird, PerfectFifth, Ninth} {
		if !pcs.Contains(PitchClassOf(iv)) {
			t.Errorf("PitchClassSetOf missing pitch class for %v", iv)
		}
	}
	if pcs.Contains(PitchClassOf(MinorThird)) {
		t.Errorf("PitchClassSetOf should not contain MinorThird's pitch class")
	}
}
