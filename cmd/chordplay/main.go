// Command chordplay parses a chord name from its command-line argument,
// prints its canonical name and spelling with terminal styling, and
// writes a one-bar standard MIDI file voicing the chord so it can be
// auditioned with any MIDI player.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"

	chords "github.com/PauSala/chordparser"
	"github.com/PauSala/chordparser/midiplay"
)

func main() {
	var (
		out    = flag.String("out", "chord.mid", "path to write the generated MIDI file")
		tempo  = flag.Float64("tempo", 120, "tempo in beats per minute")
		octave = flag.Int("octave", midiplay.DefaultOctave, "base octave the chord is voiced in")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "Usage:\n  %s [flags] chord\n\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}

	ch, err := chords.Parse(args[0])
	if err != nil {
		logger.Error("failed to parse chord", "input", args[0], "err", err)
		os.Exit(1)
	}

	nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00FFFF")).Bold(true)
	noteStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF"))
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))

	notes := make([]string, len(ch.Notes))
	for i, n := range ch.Notes {
		notes[i] = n.String()
	}

	fmt.Println(nameStyle.Render(ch.Name))
	fmt.Printf("%s %v\n", labelStyle.Render("notes:"), noteStyle.Render(fmt.Sprint(notes)))
	fmt.Printf("%s %s\n", labelStyle.Render("quality:"), noteStyle.Render(ch.Quality.String()))

	s := midiplay.WriteSMF(ch, *octave, *tempo)
	f, err := os.Create(*out)
	if err != nil {
		logger.Error("failed to create MIDI file", "path", *out, "err", err)
		os.Exit(1)
	}
	defer f.Close()

	if _, err := s.WriteTo(f); err != nil {
		logger.Error("failed to write MIDI file", "path", *out, "err", err)
		os.Exit(1)
	}

	fmt.Printf("%s %s\n", labelStyle.Render("wrote:"), noteStyle.Render(*out))
}
