package pitch

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRegisters(t *testing.T) {
	cases := []struct {
		text       string
		letter     Letter
		octave     int
		alteration Alteration
	}{
		{"c", C, 3, Natural},
		{"c0", C, 3, Natural},
		{"c1", C, 4, Natural},
		{"g2", G, 5, Natural},
		{"C", C, 2, Natural},
		{"C1", C, 2, Natural},
		{"C2", C, 1, Natural},
		{"C0", C, 3, Natural},
		{"#b1", B, 4, Sharp},
		{"xf", F, 3, DoubleSharp},
		{"md1", D, 4, Flat},
		{"uB", B, 2, DoubleFlat},
	}

	for _, c := range cases {
		t.Run(c.text, func(t *testing.T) {
			p, err := Parse(c.text)
			require.NoError(t, err)

			assert := assert.New(t)
			assert.Equal(c.letter, p.Letter())
			assert.Equal(c.octave, p.Octave())
			assert.Equal(c.alteration, p.Alteration())
		})
	}
}

func TestParseRejectsMalformedText(t *testing.T) {
	for _, text := range []string{"", "H1", "c12", "#", "x", "#c12", "cc", "1", "h"} {
		t.Run(fmt.Sprintf("%q", text), func(t *testing.T) {
			_, err := Parse(text)
			assert.ErrorIs(t, err, ErrInvalidPitchSpec)
		})
	}
}

func TestDerivedValues(t *testing.T) {
	assert := assert.New(t)

	c1 := MustParse("c1")
	assert.Equal(48, c1.ChromaticValue())
	assert.Equal(28, c1.DiatonicPosition())

	bs := MustParse("#b")
	assert.Equal(48, bs.ChromaticValue())
	assert.Equal(27, bs.DiatonicPosition())

	assert.Equal(4, c1.ChromaticDistanceTo(MustParse("e1")))
	assert.Equal(-5, c1.ChromaticDistanceTo(MustParse("g")))
}

func TestNewValidatesComponents(t *testing.T) {
	_, err := New(C, 4, Alteration(3))
	assert.ErrorIs(t, err, ErrInvalidAlteration)

	_, err = New(Letter(9), 4, Natural)
	assert.ErrorIs(t, err, ErrInvalidLetter)

	p, err := New(E, 4, Flat)
	require.NoError(t, err)
	assert.Equal(t, MustParse("me1").ChromaticValue(), p.ChromaticValue())
}

func TestOrderingIgnoresAlteration(t *testing.T) {
	assert := assert.New(t)

	cs := MustParse("#c1")
	db := MustParse("md1")
	c := MustParse("c1")

	assert.True(cs.Less(db))
	assert.True(cs.Equal(c))
	assert.Equal(0, Compare(cs, c))
	assert.Equal(-1, Compare(cs, db))
	assert.Equal(1, Compare(db, cs))
}

func TestOrderingIsTotal(t *testing.T) {
	var all []Pitch
	for _, text := range []string{"C2", "uC", "c", "#c", "md", "e1", "xe1", "mf1", "b2", "A"} {
		all = append(all, MustParse(text))
	}

	for _, a := range all {
		for _, b := range all {
			lt, eq, gt := Compare(a, b) < 0, Compare(a, b) == 0, Compare(a, b) > 0
			n := 0
			for _, v := range []bool{lt, eq, gt} {
				if v {
					n++
				}
			}
			assert.Equal(t, 1, n, "%v vs %v", a, b)
			assert.Equal(t, -Compare(a, b), Compare(b, a))
		}
	}
}

func TestShiftOctaveReturnsNewPitch(t *testing.T) {
	orig := MustParse("#f1")
	down := orig.ShiftOctave(-1)

	assert := assert.New(t)
	assert.Equal(4, orig.Octave())
	assert.Equal(3, down.Octave())
	assert.Equal(Sharp, down.Alteration())
	assert.Equal(F, down.Letter())
	assert.Equal(-12, orig.ChromaticDistanceTo(down))
}

func TestSortedKeepsInputIntact(t *testing.T) {
	in := []Pitch{MustParse("g1"), MustParse("c1"), MustParse("e1")}
	out := Sorted(in)

	assert := assert.New(t)
	assert.Equal("g1", in[0].String())
	assert.Equal([]string{"c1", "e1", "g1"}, []string{out[0].String(), out[1].String(), out[2].String()})
}

func TestStringRoundTrips(t *testing.T) {
	for _, text := range []string{"c", "c1", "c9", "C", "C2", "C9", "#b1", "xf", "md1", "uB3"} {
		assert.Equal(t, text, MustParse(text).String())
	}
	assert.Equal(t, "C", MustParse("C1").String())
	assert.Equal(t, "C(-8)", MustNew(C, -8, Natural).String())
}

func TestParseAllStopsAtFirstError(t *testing.T) {
	_, err := ParseAll([]string{"c1", "z", "e1"})
	assert.ErrorIs(t, err, ErrInvalidPitchSpec)

	ps, err := ParseAll([]string{"c1", "e1"})
	require.NoError(t, err)
	assert.Len(t, ps, 2)
}
