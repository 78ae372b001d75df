package pitch

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrInvalidPitchSpec  = errors.New("invalid pitch spec")
	ErrInvalidAlteration = errors.New("alteration must be between -2 and 2")
	ErrInvalidLetter     = errors.New("letter must be one of A-G")
	ErrKeyOutOfMIDIRange = errors.New("key is outside the MIDI range")
)

const (
	SemitonesPerOctave = 12
	StepsPerOctave     = 7
)

// Letter is one of the seven natural note names.
type Letter int

const (
	C Letter = iota
	D
	E
	F
	G
	A
	B
)

var letterNames = [...]string{"C", "D", "E", "F", "G", "A", "B"}

// semitones above C for each natural
var letterOffsets = [...]int{0, 2, 4, 5, 7, 9, 11}

func (l Letter) String() string {
	if !l.valid() {
		return fmt.Sprintf("Letter(%d)", int(l))
	}
	return letterNames[l]
}

// Offset is the letter's chromatic distance above C.
func (l Letter) Offset() int {
	return letterOffsets[l]
}

// Index is the letter's diatonic position above C (C=0 ... B=6).
func (l Letter) Index() int {
	return int(l)
}

func (l Letter) valid() bool {
	return l >= C && l <= B
}

func letterFromByte(b byte) (Letter, bool) {
	switch b {
	case 'C', 'c':
		return C, true
	case 'D', 'd':
		return D, true
	case 'E', 'e':
		return E, true
	case 'F', 'f':
		return F, true
	case 'G', 'g':
		return G, true
	case 'A', 'a':
		return A, true
	case 'B', 'b':
		return B, true
	}
	return 0, false
}

// Alteration is the accidental applied to a letter, in semitones.
type Alteration int

const (
	DoubleFlat  Alteration = -2
	Flat        Alteration = -1
	Natural     Alteration = 0
	Sharp       Alteration = 1
	DoubleSharp Alteration = 2
)

// Marker returns the compact-syntax prefix for the alteration.
func (a Alteration) Marker() string {
	switch a {
	case DoubleFlat:
		return "u"
	case Flat:
		return "m"
	case Sharp:
		return "#"
	case DoubleSharp:
		return "x"
	}
	return ""
}

func (a Alteration) String() string {
	switch a {
	case DoubleFlat:
		return "double-flat"
	case Flat:
		return "flat"
	case Natural:
		return "natural"
	case Sharp:
		return "sharp"
	case DoubleSharp:
		return "double-sharp"
	}
	return fmt.Sprintf("Alteration(%d)", int(a))
}

func (a Alteration) valid() bool {
	return a >= DoubleFlat && a <= DoubleSharp
}

func alterationFromMarker(b byte) (Alteration, bool) {
	switch b {
	case '#':
		return Sharp, true
	case 'x':
		return DoubleSharp, true
	case 'm':
		return Flat, true
	case 'u':
		return DoubleFlat, true
	}
	return Natural, false
}

// Pitch is an immutable spelled tone: a letter in an octave group with an
// alteration. Octave group 3 holds the unmarked lowercase letters (c..b),
// group 2 the unmarked uppercase ones (C..B).
//
// Ordering and equality look only at the diatonic position, so C# and Db in
// the same octave group compare by their letters and C# equals C.
type Pitch struct {
	letter     Letter
	octave     int
	alteration Alteration

	chromatic int
	diatonic  int
}

// New builds a pitch from its components.
func New(letter Letter, octave int, alteration Alteration) (Pitch, error) {
	if !letter.valid() {
		return Pitch{}, fmt.Errorf("%w: %d", ErrInvalidLetter, int(letter))
	}
	if !alteration.valid() {
		return Pitch{}, fmt.Errorf("%w: got %d", ErrInvalidAlteration, int(alteration))
	}
	return newPitch(letter, octave, alteration), nil
}

// MustNew is like New but panics on invalid components.
func MustNew(letter Letter, octave int, alteration Alteration) Pitch {
	p, err := New(letter, octave, alteration)
	if err != nil {
		panic(err)
	}
	return p
}

func newPitch(letter Letter, octave int, alteration Alteration) Pitch {
	return Pitch{
		letter:     letter,
		octave:     octave,
		alteration: alteration,
		chromatic:  octave*SemitonesPerOctave + letter.Offset() + int(alteration),
		diatonic:   octave*StepsPerOctave + letter.Index(),
	}
}

// Parse reads the compact syntax [alteration]<letter>[digit].
//
// The alteration marker is one of '#' (sharp), 'x' (double sharp),
// 'm' (flat) or 'u' (double flat). A lowercase letter sits in octave
// group 3 and a digit counts up from there. An uppercase letter sits in
// group 2 when bare, and a digit counts down from group 3, so "C1" and "C"
// name the same pitch.
func Parse(text string) (Pitch, error) {
	if text == "" {
		return Pitch{}, fmt.Errorf("%w: empty string", ErrInvalidPitchSpec)
	}

	rest := text
	alteration := Natural
	if a, ok := alterationFromMarker(rest[0]); ok {
		alteration = a
		rest = rest[1:]
	}

	if len(rest) != 1 && len(rest) != 2 {
		return Pitch{}, fmt.Errorf("%w: %q needs a letter and at most one octave digit", ErrInvalidPitchSpec, text)
	}

	letter, ok := letterFromByte(rest[0])
	if !ok {
		return Pitch{}, fmt.Errorf("%w: %q has unknown letter %q", ErrInvalidPitchSpec, text, rest[0])
	}
	lower := rest[0] >= 'a'

	digit := 0
	if len(rest) == 2 {
		if rest[1] < '0' || rest[1] > '9' {
			return Pitch{}, fmt.Errorf("%w: %q has non-digit octave %q", ErrInvalidPitchSpec, text, rest[1])
		}
		digit = int(rest[1] - '0')
	}

	var octave int
	switch {
	case lower:
		octave = 3 + digit
	case len(rest) == 2:
		octave = 3 - digit
	default:
		octave = 2
	}
	return newPitch(letter, octave, alteration), nil
}

// MustParse is like Parse but panics on malformed text.
func MustParse(text string) Pitch {
	p, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return p
}

// ParseAll parses each text in order, stopping at the first failure.
func ParseAll(texts []string) ([]Pitch, error) {
	res := make([]Pitch, 0, len(texts))
	for _, t := range texts {
		p, err := Parse(t)
		if err != nil {
			return nil, err
		}
		res = append(res, p)
	}
	return res, nil
}

func (p Pitch) Letter() Letter         { return p.letter }
func (p Pitch) Octave() int            { return p.octave }
func (p Pitch) Alteration() Alteration { return p.alteration }

// ChromaticValue is the absolute height in semitones, alteration included.
func (p Pitch) ChromaticValue() int { return p.chromatic }

// DiatonicPosition is the letter-and-octave ordering key.
func (p Pitch) DiatonicPosition() int { return p.diatonic }

// ChromaticDistanceTo is negative when other sounds lower than p.
func (p Pitch) ChromaticDistanceTo(other Pitch) int {
	return other.chromatic - p.chromatic
}

// ShiftOctave returns a copy of p moved by delta octave groups.
func (p Pitch) ShiftOctave(delta int) Pitch {
	return newPitch(p.letter, p.octave+delta, p.alteration)
}

func (p Pitch) Equal(other Pitch) bool { return Compare(p, other) == 0 }
func (p Pitch) Less(other Pitch) bool  { return Compare(p, other) < 0 }

// String renders p in the compact syntax. Octave groups the syntax cannot
// express fall back to an explicit group suffix, e.g. "C(-8)".
func (p Pitch) String() string {
	var sb strings.Builder
	sb.WriteString(p.alteration.Marker())
	name := p.letter.String()
	switch {
	case p.octave >= 3 && p.octave <= 12:
		sb.WriteString(strings.ToLower(name))
		if p.octave > 3 {
			sb.WriteByte(byte('0' + p.octave - 3))
		}
	case p.octave <= 2 && p.octave >= -6:
		sb.WriteString(name)
		if p.octave < 2 {
			sb.WriteByte(byte('0' + 3 - p.octave))
		}
	default:
		fmt.Fprintf(&sb, "%s(%d)", name, p.octave)
	}
	return sb.String()
}

// Compare orders pitches by diatonic position: -1, 0 or 1.
func Compare(a, b Pitch) int {
	switch {
	case a.diatonic < b.diatonic:
		return -1
	case a.diatonic > b.diatonic:
		return 1
	}
	return 0
}

// Sorted returns an ascending copy of pitches. Pitches sharing a diatonic
// position keep their input order.
func Sorted(pitches []Pitch) []Pitch {
	res := make([]Pitch, len(pitches))
	copy(res, pitches)
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].diatonic < res[j].diatonic
	})
	return res
}
