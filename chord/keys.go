package chord

import (
	"fmt"
	"sort"

	"github.com/jsphweid/tertian/pitch"
)

// CreateChordKey joins sorted MIDI keys with dashes, e.g. "60-64-67". The
// input slice is sorted in place.
func CreateChordKey(notes []uint8) string {
	sort.Slice(notes, func(i, j int) bool {
		return notes[i] < notes[j]
	})
	var res string
	for i, note := range notes {
		res += fmt.Sprintf("%v", note)
		if i < len(notes)-1 {
			res += "-"
		}
	}
	return res
}

// ClassifyKeys classifies sounding MIDI keys. Black keys can be spelled
// either way, so every combination of spellings is tried, sharps first,
// and the first one that stacks in thirds wins. When none does the
// all-sharps spelling is returned as Unknown.
func ClassifyKeys(keys []uint8) (Chord, error) {
	if len(keys) != 3 && len(keys) != 4 {
		return Chord{}, fmt.Errorf("%w: got %d", ErrInvalidChordArity, len(keys))
	}

	options := make([][]pitch.Pitch, len(keys))
	for i, k := range keys {
		spellings, err := pitch.Spellings(k)
		if err != nil {
			return Chord{}, err
		}
		options[i] = spellings
	}

	var first Chord
	choice := make([]int, len(keys))
	for n := 0; ; n++ {
		candidate := make([]pitch.Pitch, len(keys))
		for i, opts := range options {
			candidate[i] = opts[choice[i]]
		}

		c, err := Classify(candidate)
		if err != nil {
			return Chord{}, err
		}
		if c.Known() {
			return c, nil
		}
		if n == 0 {
			first = c
		}

		if !advance(choice, options) {
			return first, nil
		}
	}
}

// advance steps choice through the spelling combinations like an odometer,
// last key fastest. It reports false once every combination was visited.
func advance(choice []int, options [][]pitch.Pitch) bool {
	for i := len(choice) - 1; i >= 0; i-- {
		choice[i]++
		if choice[i] < len(options[i]) {
			return true
		}
		choice[i] = 0
	}
	return false
}
