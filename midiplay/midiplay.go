// Package midiplay turns a parsed chord into MIDI messages. It depends
// on the chords package, never the reverse: chords stays a pure parsing
// library with no notion of MIDI I/O, and this package is the "external
// collaborator" that gives its output a concrete sound.
package midiplay

import (
	"sort"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	chords "github.com/PauSala/chordparser"
)

// Voicing is the absolute MIDI note numbers a chord is rendered at,
// built by stacking the chord's semitone offsets above a base octave.
type Voicing []uint8

// DefaultOctave is the octave a chord is voiced in when the caller has
// no preference. With octaves starting at octave*12, octave 4 starts at
// MIDI note 48, one octave below middle C (60).
const DefaultOctave = 4

// VoicingOf renders c's semitones as absolute MIDI note numbers in the
// octave starting at octave*12. A slash-bass, if present, is added an
// octave below the root so it reads as the lowest note.
func VoicingOf(c *chords.Chord, octave int) Voicing {
	base := octave * 12
	v := make(Voicing, 0, len(c.Semitones)+1)
	if c.Bass != nil {
		bassSemitone := c.Bass.MustSemitone()
		rootSemitone := c.Root.MustSemitone()
		rel := ((bassSemitone - rootSemitone) % 12 + 12) % 12
		v = append(v, uint8(base-12+rel))
	}
	for _, st := range c.Semitones {
		v = append(v, uint8(base+st))
	}
	return v
}

// Event is a single timed MIDI message, ticks from the start of the
// sequence it belongs to.
type Event struct {
	Tick    uint32
	Message midi.Message
}

// NoteOnOffSequence builds the note-on/note-off pair for every note in
// v on the given channel, held for durationTicks, sorted so note-offs
// interleave correctly with any later note-ons.
func NoteOnOffSequence(v Voicing, channel uint8, velocity uint8, durationTicks uint32) []Event {
	events := make([]Event, 0, len(v)*2)
	for _, n := range v {
		events = append(events, Event{Tick: 0, Message: midi.NoteOn(channel, n, velocity)})
		events = append(events, Event{Tick: durationTicks, Message: midi.NoteOff(channel, n)})
	}
	sort.SliceStable(events, func(i, j int) bool { return events[i].Tick < events[j].Tick })
	return events
}

// WriteSMF renders c as a single-bar standard MIDI file: a tempo track
// set to the given tempo (beats per minute), then one track carrying a
// program change followed by the voicing's note-on/note-off burst.
func WriteSMF(c *chords.Chord, octave int, tempoBPM float64) *smf.SMF {
	const ticksPerQuarter = 480
	const channel = 0
	const velocity = 100
	const durationTicks = ticksPerQuarter * 4 // one bar at 4/4

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(ticksPerQuarter)

	var tempoTrack smf.Track
	tempoTrack.Add(0, smf.MetaTempo(tempoBPM))
	tempoTrack.Close(0)
	s.Add(tempoTrack)

	var track smf.Track
	track.Add(0, midi.ProgramChange(channel, 0)) // acoustic grand piano

	v := VoicingOf(c, octave)
	events := NoteOnOffSequence(v, channel, velocity, durationTicks)

	prevTick := uint32(0)
	for _, evt := range events {
		track.Add(evt.Tick-prevTick, evt.Message)
		prevTick = evt.Tick
	}
	track.Close(0)
	s.Add(track)

	return s
}
