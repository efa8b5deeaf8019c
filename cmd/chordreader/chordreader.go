// Command chordreader is a command-line program that spells chords. The
// chord names are given as command-line args. The program fails if an
// invalid chord name is given.
//
// The program parses each chord name, evaluates and validates it, and
// prints its canonical name along with its constituent tones.
//
// Valid chord names must first indicate their root tone as: 'A'-'G' (must
// be capital) followed by an optional '#', '♯', 'b', or '♭'. The root
// tone may be followed by a triad indicator (major if omitted): '-', 'm',
// or 'min' for minor; 'aug' or '+' for augmented; 'dim', 'o' or '°' for
// diminished (fully-diminished if a 7th is present); 'ø' for
// half-diminished (implies the 7th).
//
// For four+ part chords, the next symbol is usually a '7' with an
// optional modifier indicating a major 7th: 'maj', 'Maj', 'M', '^' or 'Δ'.
// This may be followed by additional tones, '4', '6', '9', '11', and/or
// '13'; 'b5', '#5', 'b6', 'b9', '#9', '#11' and 'b13' name altered tones.
// Presence of such a subsequent tone greater than 7 (e.g. 9, 11, 13)
// implies presence of the 7th.
//
// A 'sus' can be used in place of a triad indicator to mean that the 3rd
// is replaced. The 'sus' is followed by a '2' or '4' to indicate which
// note replaces the 3rd.
//
// A chord name can end with a bass tone, indicated by a '/' followed by
// the bass tone (same syntax as the chord's root tone).
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path"

	chords "github.com/PauSala/chordparser"
)

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		fmt.Println("Usage:")
		fmt.Printf("  %s chord...\n", path.Base(os.Args[0]))
		fmt.Println(`
Each argument is a chord. Each chord will be spelled out and its canonical
name printed.

Valid chords must first indicate their root tone as: 'A'-'G' (must be
capital) followed by an optional '#', '♯', 'b', or '♭'. The root tone may
be followed by a triad indicator (major if omitted): '-', 'm', or 'min'
for minor; 'aug' or '+' for augmented; 'dim', 'o' or '°' for diminished
(fully-diminished if a 7th is present); 'ø' for half-diminished (implies
the 7th).

For four+ part chords, the next symbol is usually a '7' with an optional
modifier indicating a major 7th: 'maj', 'Maj', 'M', '^' or 'Δ'. This may
be followed by additional tones, '4', '6', '9', '11', and/or '13'; 'b5',
'#5', 'b6', 'b9', '#9', '#11' and 'b13' name altered tones. Presence of such a
subsequent tone greater than 7 (e.g. 9, 11, 13) implies presence of the
7th.

A 'sus' can be used in place of a triad indicator to mean that the 3rd is
replaced. The 'sus' is followed by a '2' or '4' to indicate which note
replaces the 3rd.

A chord can end with a bass tone, indicated by a '/' followed by the bass
tone (same syntax as the chord's root tone).`)
		return
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	chs := make(map[string]*chords.Chord, len(args))
	for _, s := range args {
		ch, err := chords.Parse(s)
		if err != nil {
			logger.Error("failed to parse chord", "input", s, "err", err)
			os.Exit(1)
		}
		chs[s] = ch

		notes := make([]string, len(ch.Notes))
		for i, n := range ch.Notes {
			notes[i] = n.String()
		}
		fmt.Printf("%s => %s: %v\n", s, ch.Name, notes)
	}
}
