package chord

import (
	"errors"
	"fmt"

	"github.com/jsphweid/tertian/interval"
	"github.com/jsphweid/tertian/lang"
	"github.com/jsphweid/tertian/pitch"
)

var ErrInvalidChordArity = errors.New("a chord needs 3 or 4 pitches")

// Quality is the stacked-third quality of a triad or seventh chord. The
// same value names the triad or the seventh depending on the chord size.
type Quality int

const (
	Unknown Quality = iota
	Augmented
	Major
	Minor
	Diminished
	MajorMinor
	MinorMajor
	HalfDiminished
)

// Inversion names the chord member that sounds lowest.
type Inversion int

const (
	Undetermined Inversion = iota - 1
	Root
	First
	Second
	Third
)

type third int

const (
	notThird third = iota
	majorThird
	minorThird
)

var triads = map[[2]third]Quality{
	{majorThird, majorThird}: Augmented,
	{majorThird, minorThird}: Major,
	{minorThird, majorThird}: Minor,
	{minorThird, minorThird}: Diminished,
}

var sevenths = map[[3]third]Quality{
	{majorThird, majorThird, minorThird}: Augmented,
	{majorThird, minorThird, majorThird}: Major,
	{majorThird, minorThird, minorThird}: MajorMinor,
	{minorThird, majorThird, majorThird}: MinorMajor,
	{minorThird, majorThird, minorThird}: Minor,
	{minorThird, minorThird, majorThird}: HalfDiminished,
	{minorThird, minorThird, minorThird}: Diminished,
}

// Chord is a classified set of three or four pitches.
type Chord struct {
	pitches   []pitch.Pitch
	stack     []pitch.Pitch
	quality   Quality
	inversion Inversion
}

// Classify sorts the pitches and searches their rotations for a stack of
// thirds. A chord that never stacks comes back Unknown, not as an error.
// The inversion is read from the bass, so open voicings that span more
// than an octave are named by their lowest member.
func Classify(pitches []pitch.Pitch) (Chord, error) {
	if len(pitches) != 3 && len(pitches) != 4 {
		return Chord{}, fmt.Errorf("%w: got %d", ErrInvalidChordArity, len(pitches))
	}

	c := Chord{
		pitches:   pitch.Sorted(pitches),
		quality:   Unknown,
		inversion: Undetermined,
	}

	working := c.pitches
	for lift := 0; lift < len(working); lift++ {
		if q := stackQuality(working); q != Unknown {
			c.quality = q
			c.inversion = inversionOf(c.pitches[0], working)
			c.stack = working
			break
		}
		working = liftHighest(working)
	}
	return c, nil
}

// liftHighest drops the top pitch an octave so it becomes the bass.
func liftHighest(ps []pitch.Pitch) []pitch.Pitch {
	next := make([]pitch.Pitch, 0, len(ps))
	next = append(next, ps[len(ps)-1].ShiftOctave(-1))
	next = append(next, ps[:len(ps)-1]...)
	return pitch.Sorted(next)
}

// inversionOf finds which member of stack (root, third, fifth, seventh)
// bass spells.
func inversionOf(bass pitch.Pitch, stack []pitch.Pitch) Inversion {
	for i, member := range stack {
		if sameSpelling(member, bass) {
			return Inversion(i)
		}
	}
	return Undetermined
}

func sameSpelling(a, b pitch.Pitch) bool {
	return a.Letter() == b.Letter() && a.Alteration() == b.Alteration()
}

func stackQuality(ps []pitch.Pitch) Quality {
	gaps := make([]third, len(ps)-1)
	for i := range gaps {
		gaps[i] = thirdOf(interval.Classify(ps[i], ps[i+1]))
	}

	switch len(gaps) {
	case 2:
		return triads[[2]third{gaps[0], gaps[1]}]
	case 3:
		return sevenths[[3]third{gaps[0], gaps[1], gaps[2]}]
	}
	return Unknown
}

func thirdOf(iv interval.Interval) third {
	if !iv.IsThird() {
		return notThird
	}
	if iv.Quality == interval.Major {
		return majorThird
	}
	return minorThird
}

// Pitches returns the input pitches in ascending order.
func (c Chord) Pitches() []pitch.Pitch {
	res := make([]pitch.Pitch, len(c.pitches))
	copy(res, c.pitches)
	return res
}

func (c Chord) Quality() Quality     { return c.quality }
func (c Chord) Inversion() Inversion { return c.inversion }
func (c Chord) IsSeventh() bool      { return len(c.pitches) == 4 }
func (c Chord) Known() bool          { return c.quality != Unknown }

// Root is the input pitch the chord is built on. It reports false for
// Unknown chords.
func (c Chord) Root() (pitch.Pitch, bool) {
	if !c.Known() {
		return pitch.Pitch{}, false
	}
	bottom := c.stack[0]
	for _, in := range c.pitches {
		if sameSpelling(in, bottom) {
			return in, true
		}
	}
	return bottom, true
}

// Figure is the figured-bass symbol of the inversion, e.g. "6/4". It is
// empty for Unknown chords.
func (c Chord) Figure() string {
	if !c.Known() {
		return ""
	}
	figures := triadFigures
	if c.IsSeventh() {
		figures = seventhFigures
	}
	return figures[c.inversion]
}

func (c Chord) String() string {
	return c.Label(lang.English)
}

// Label composes quality and inversion, e.g. "minor triad, first
// inversion" or 小六和弦.
func (c Chord) Label(loc lang.Locale) string {
	if !c.Known() {
		if loc == lang.Chinese {
			return UndefinedZh
		}
		return Undefined
	}

	if loc == lang.Chinese {
		figures := triadFiguresZh
		names := triadNamesZh
		if c.IsSeventh() {
			figures = seventhFiguresZh
			names = seventhNamesZh
		}
		return names[c.quality] + figures[c.inversion] + "和弦"
	}

	kind := "triad"
	names := triadNames
	if c.IsSeventh() {
		kind = "seventh"
		names = seventhNames
	}
	return fmt.Sprintf("%s %s, %s", names[c.quality], kind, inversionNames[c.inversion])
}

// Describe parses the notes and labels the chord they form in English.
func Describe(notes ...string) (string, error) {
	return DescribeIn(lang.English, notes...)
}

func DescribeIn(loc lang.Locale, notes ...string) (string, error) {
	ps, err := pitch.ParseAll(notes)
	if err != nil {
		return "", err
	}
	c, err := Classify(ps)
	if err != nil {
		return "", err
	}
	return c.Label(loc), nil
}

// QualityName names q for a chord of the given size in English.
func QualityName(q Quality, seventh bool) string {
	names := triadNames
	if seventh {
		names = seventhNames
	}
	if name, ok := names[q]; ok {
		return name
	}
	return Undefined
}
