package interval

import (
	"testing"

	"github.com/jsphweid/tertian/lang"
	"github.com/jsphweid/tertian/pitch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classify(low, high string) Interval {
	return Classify(pitch.MustParse(low), pitch.MustParse(high))
}

func TestClassify(t *testing.T) {
	cases := []struct {
		low, high string
		number    int
		quality   Quality
		label     string
	}{
		{"c1", "c1", 1, Perfect, "perfect unison"},
		{"c1", "md1", 2, Minor, "minor second"},
		{"#b", "c1", 2, Diminished, "diminished second"},
		{"c1", "e1", 3, Major, "major third"},
		{"c1", "me1", 3, Minor, "minor third"},
		{"c1", "ue1", 3, Diminished, "diminished third"},
		{"#c1", "ue1", 3, DoubleDiminished, "double-diminished third"},
		{"c1", "#e1", 3, Augmented, "augmented third"},
		{"c1", "f1", 4, Perfect, "perfect fourth"},
		{"c1", "#f1", 4, Augmented, "augmented fourth"},
		{"c1", "xf1", 4, DoubleAugmented, "double-augmented fourth"},
		{"#c1", "mf1", 4, DoubleDiminished, "double-diminished fourth"},
		{"#c1", "uf1", 4, Unknown, "unknown fourth"},
		{"c1", "g1", 5, Perfect, "perfect fifth"},
		{"c1", "mg1", 5, Diminished, "diminished fifth"},
		{"c1", "a1", 6, Major, "major sixth"},
		{"c1", "b1", 7, Major, "major seventh"},
		{"c1", "mb1", 7, Minor, "minor seventh"},
		{"c1", "ub1", 7, Diminished, "diminished seventh"},
		{"c1", "#b1", 7, Augmented, "augmented seventh"},
		{"c1", "xb1", 7, DoubleAugmented, "double-augmented seventh"},
		{"c1", "c2", 8, Perfect, "perfect octave"},
		{"c1", "e2", 10, Major, "major tenth"},
		{"C", "g", 12, Perfect, "perfect twelfth"},
	}

	for _, c := range cases {
		t.Run(c.low+"-"+c.high, func(t *testing.T) {
			iv := classify(c.low, c.high)

			assert := assert.New(t)
			assert.Equal(c.number, iv.Number)
			assert.Equal(c.quality, iv.Quality)
			assert.Equal(c.label, iv.String())
		})
	}
}

func TestClassifyKeepsDirection(t *testing.T) {
	iv := classify("g1", "c1")

	assert := assert.New(t)
	assert.Equal(Unknown, iv.Quality)
	assert.Equal(-4, iv.Steps)
	assert.Equal(5, iv.Number)
	assert.Equal("unknown fifth", iv.String())
}

func TestClassifyDescendingPairsAreUnknown(t *testing.T) {
	texts := []string{"C", "#C", "e", "mg", "a1", "#b1", "d2", "uf2"}
	for _, a := range texts {
		for _, b := range texts {
			pa, pb := pitch.MustParse(a), pitch.MustParse(b)
			if pa.ChromaticDistanceTo(pb) < 0 {
				assert.Equal(t, Unknown, Classify(pa, pb).Quality, "%s above %s", a, b)
			}
		}
	}
}

func TestDegreeFoldsCompoundIntervals(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(3, classify("c1", "e2").Degree)
	assert.Equal(1, classify("c1", "c2").Degree)
	assert.Equal(7, classify("c1", "b1").Degree)
}

func TestIsThird(t *testing.T) {
	assert := assert.New(t)
	assert.True(classify("c1", "e1").IsThird())
	assert.True(classify("e1", "g1").IsThird())
	assert.False(classify("c1", "#e1").IsThird())
	assert.False(classify("c1", "e2").IsThird())
	assert.False(classify("c1", "d1").IsThird())
}

func TestBetweenOrdersByStaffPosition(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("major third", Between(pitch.MustParse("e1"), pitch.MustParse("c1")).String())

	// b# sits below c1 on the staff but above it in pitch
	assert.Equal(Unknown, Between(pitch.MustParse("uc1"), pitch.MustParse("#b")).Quality)
}

func TestChineseLabels(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("大三度", classify("c1", "e1").Label(lang.Chinese))
	assert.Equal("纯八度", classify("c1", "c2").Label(lang.Chinese))
	assert.Equal("增七度", classify("c1", "#b1").Label(lang.Chinese))
	assert.Equal("小十度", classify("c1", "me2").Label(lang.Chinese))
	assert.Equal("倍减三度", classify("#c1", "ue1").Label(lang.Chinese))
}

func TestDescribe(t *testing.T) {
	got, err := Describe("g1", "c1")
	require.NoError(t, err)
	assert.Equal(t, "perfect fifth", got)

	got, err = DescribeIn(lang.Chinese, "c1", "md1")
	require.NoError(t, err)
	assert.Equal(t, "小二度", got)

	_, err = Describe("H1", "c1")
	assert.ErrorIs(t, err, pitch.ErrInvalidPitchSpec)
	_, err = Describe("c1", "")
	assert.ErrorIs(t, err, pitch.ErrInvalidPitchSpec)
}

func TestClassifyIsDeterministic(t *testing.T) {
	assert.Equal(t, classify("#f", "a1"), classify("#f", "a1"))
}
