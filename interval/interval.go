package interval

import (
	"fmt"

	"github.com/jsphweid/tertian/lang"
	"github.com/jsphweid/tertian/pitch"
)

// Quality is the closed set of interval qualities.
type Quality int

const (
	Unknown Quality = iota
	DoubleDiminished
	Diminished
	Minor
	Perfect
	Major
	Augmented
	DoubleAugmented
)

var qualityNames = map[Quality]string{
	Unknown:          "unknown",
	DoubleDiminished: "double-diminished",
	Diminished:       "diminished",
	Minor:            "minor",
	Perfect:          "perfect",
	Major:            "major",
	Augmented:        "augmented",
	DoubleAugmented:  "double-augmented",
}

var qualityNamesZh = map[Quality]string{
	Unknown:          "未知",
	DoubleDiminished: "倍减",
	Diminished:       "减",
	Minor:            "小",
	Perfect:          "纯",
	Major:            "大",
	Augmented:        "增",
	DoubleAugmented:  "倍增",
}

func (q Quality) String() string {
	return q.Label(lang.English)
}

func (q Quality) Label(loc lang.Locale) string {
	names := qualityNames
	if loc == lang.Chinese {
		names = qualityNamesZh
	}
	if name, ok := names[q]; ok {
		return name
	}
	return fmt.Sprintf("Quality(%d)", int(q))
}

// semitones of the major or perfect interval on each simple degree,
// indexed 1..7 (slot 0 unused)
var criterion = [...]int{0, 0, 2, 4, 5, 7, 9, 11}

// degrees whose reference interval is perfect rather than major
var perfectDegrees = map[int]bool{1: true, 4: true, 5: true}

// Interval is the classified relation between an ordered pair of pitches.
type Interval struct {
	Low, High pitch.Pitch

	// Steps is the signed diatonic distance from Low to High.
	Steps int
	// Number is the diatonic interval number: 1 unison, 3 third, 8 octave,
	// 10 tenth.
	Number int
	// Degree folds Number onto 1..7.
	Degree  int
	Quality Quality
}

// Classify names the interval from low up to high. The pair is never
// reordered: if high sounds below low the result is Unknown.
func Classify(low, high pitch.Pitch) Interval {
	steps := high.DiatonicPosition() - low.DiatonicPosition()
	number := abs(steps) + 1
	iv := Interval{
		Low:     low,
		High:    high,
		Steps:   steps,
		Number:  number,
		Degree:  (number-1)%pitch.StepsPerOctave + 1,
		Quality: Unknown,
	}

	semitones := low.ChromaticDistanceTo(high)
	if semitones < 0 {
		return iv
	}
	semitones %= pitch.SemitonesPerOctave

	offset := semitones - criterion[iv.Degree]
	// an augmented seventh folds to 0 semitones and would read as -11
	if iv.Degree == 7 && offset <= -10 {
		offset += pitch.SemitonesPerOctave
	}

	if perfectDegrees[iv.Degree] {
		iv.Quality = perfectQuality(offset)
	} else {
		iv.Quality = majorQuality(offset)
	}
	return iv
}

// Between classifies a and b after putting them in diatonic order.
func Between(a, b pitch.Pitch) Interval {
	if pitch.Compare(a, b) > 0 {
		a, b = b, a
	}
	return Classify(a, b)
}

func perfectQuality(offset int) Quality {
	switch offset {
	case 0:
		return Perfect
	case 1:
		return Augmented
	case 2:
		return DoubleAugmented
	case -1:
		return Diminished
	case -2:
		return DoubleDiminished
	}
	return Unknown
}

func majorQuality(offset int) Quality {
	switch offset {
	case 0:
		return Major
	case 1:
		return Augmented
	case 2:
		return DoubleAugmented
	case -1:
		return Minor
	case -2:
		return Diminished
	case -3:
		return DoubleDiminished
	}
	return Unknown
}

// IsThird reports whether iv is a simple major or minor third.
func (iv Interval) IsThird() bool {
	return iv.Number == 3 && (iv.Quality == Major || iv.Quality == Minor)
}

func (iv Interval) String() string {
	return iv.Label(lang.English)
}

// Label composes quality and interval number, e.g. "minor tenth" or 小十度.
func (iv Interval) Label(loc lang.Locale) string {
	if loc == lang.Chinese {
		return iv.Quality.Label(loc) + lang.ChineseNumeral(iv.Number) + "度"
	}
	return iv.Quality.Label(loc) + " " + lang.IntervalName(iv.Number)
}

// Describe parses two pitches and labels the interval between them in
// English, in whichever order they sit on the staff.
func Describe(a, b string) (string, error) {
	return DescribeIn(lang.English, a, b)
}

func DescribeIn(loc lang.Locale, a, b string) (string, error) {
	pa, err := pitch.Parse(a)
	if err != nil {
		return "", err
	}
	pb, err := pitch.Parse(b)
	if err != nil {
		return "", err
	}
	return Between(pa, pb).Label(loc), nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
