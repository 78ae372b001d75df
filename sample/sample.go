package sample

import (
	"fmt"
	"io"
	"os"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	TicksPerQuarter = 480
	velocity        = 90
)

// Create renders each chord as a block lasting ticksPerChord, one after
// the other, on channel 0 of a single track.
func Create(chords [][]uint8, ticksPerChord uint32) (*smf.SMF, error) {
	res := smf.New()
	res.TimeFormat = smf.MetricTicks(TicksPerQuarter)

	var track smf.Track
	for _, keys := range chords {
		for _, key := range keys {
			track.Add(0, midi.NoteOn(0, key, velocity))
		}
		for i, key := range keys {
			var delta uint32
			if i == 0 {
				delta = ticksPerChord
			}
			track.Add(delta, midi.NoteOff(0, key))
		}
	}
	track.Close(0)

	if err := res.Add(track); err != nil {
		return nil, fmt.Errorf("adding track: %w", err)
	}
	return res, nil
}

func Write(w io.Writer, chords [][]uint8, ticksPerChord uint32) error {
	s, err := Create(chords, ticksPerChord)
	if err != nil {
		return err
	}
	_, err = s.WriteTo(w)
	return err
}

func WriteFile(path string, chords [][]uint8, ticksPerChord uint32) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := Write(f, chords, ticksPerChord); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
