package pitch

import "fmt"

// Octave group 4 ("c1") starts at MIDI key 60.
const midiOffset = SemitonesPerOctave

// Spelling picks the letter for black keys.
type Spelling int

const (
	PreferSharps Spelling = iota
	PreferFlats
)

type spelled struct {
	letter     Letter
	alteration Alteration
}

var sharpSpellings = [SemitonesPerOctave]spelled{
	{C, Natural}, {C, Sharp}, {D, Natural}, {D, Sharp}, {E, Natural}, {F, Natural},
	{F, Sharp}, {G, Natural}, {G, Sharp}, {A, Natural}, {A, Sharp}, {B, Natural},
}

var flatSpellings = [SemitonesPerOctave]spelled{
	{C, Natural}, {D, Flat}, {D, Natural}, {E, Flat}, {E, Natural}, {F, Natural},
	{G, Flat}, {G, Natural}, {A, Flat}, {A, Natural}, {B, Flat}, {B, Natural},
}

// MIDIKey returns the MIDI key number p sounds at. It may fall outside
// 0-127 for extreme pitches.
func (p Pitch) MIDIKey() int {
	return p.chromatic + midiOffset
}

// FromMIDIKey spells a MIDI key with the given preference for black keys.
func FromMIDIKey(key uint8, spelling Spelling) (Pitch, error) {
	if key > 127 {
		return Pitch{}, fmt.Errorf("%w: %d", ErrKeyOutOfMIDIRange, key)
	}
	table := sharpSpellings
	if spelling == PreferFlats {
		table = flatSpellings
	}
	return fromKey(int(key), table[int(key)%SemitonesPerOctave]), nil
}

// Spellings lists every spelling FromMIDIKey can produce for key, sharps
// first. White keys have a single spelling.
func Spellings(key uint8) ([]Pitch, error) {
	sharp, err := FromMIDIKey(key, PreferSharps)
	if err != nil {
		return nil, err
	}
	flat, _ := FromMIDIKey(key, PreferFlats)
	if sharp.letter == flat.letter {
		return []Pitch{sharp}, nil
	}
	return []Pitch{sharp, flat}, nil
}

func fromKey(key int, s spelled) Pitch {
	// the letter's natural may sit across an octave boundary from the key
	base := key - midiOffset - int(s.alteration) - s.letter.Offset()
	return newPitch(s.letter, base/SemitonesPerOctave, s.alteration)
}
