package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/tertian/chord"
	"github.com/jsphweid/tertian/constants"
	"github.com/jsphweid/tertian/logging"
	"github.com/jsphweid/tertian/pitch"
	"github.com/jsphweid/tertian/sample"
	"github.com/spf13/cobra"
)

var chordOut string

func init() {
	chordCmd.Flags().StringVarP(&chordOut, "out", "o", "", "also render the chord to this MIDI file")
	rootCmd.AddCommand(chordCmd)
}

var chordCmd = &cobra.Command{
	Use:   "chord <pitch> <pitch> <pitch> [pitch]",
	Short: "Names a triad or seventh chord",
	Long: `Names the quality and inversion of three or four pitches, e.g.
"tertian chord e1 g1 c2" prints "major triad, first inversion".`,
	Args: cobra.RangeArgs(3, 4),
	RunE: func(cmd *cobra.Command, args []string) error {
		loc, err := locale()
		if err != nil {
			return err
		}
		ps, err := pitch.ParseAll(args)
		if err != nil {
			return err
		}
		c, err := chord.Classify(ps)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, c.Label(loc))
		if root, ok := c.Root(); ok {
			fmt.Fprintf(out, "root %s, figure %s\n", root, c.Figure())
		}

		if chordOut == "" {
			return nil
		}
		return renderChord(chordOut, c)
	},
}

func renderChord(path string, c chord.Chord) error {
	var keys []uint8
	var names []string
	for _, p := range c.Pitches() {
		k := p.MIDIKey()
		if k < 0 || k > 127 {
			return fmt.Errorf("%w: %s is key %d", pitch.ErrKeyOutOfMIDIRange, p, k)
		}
		keys = append(keys, uint8(k))
		names = append(names, p.String())
	}
	if err := sample.WriteFile(path, [][]uint8{keys}, constants.TicksPerChord); err != nil {
		return err
	}
	logging.Info("wrote chord", logging.Fields{"path": path, "notes": strings.Join(names, " ")})
	return nil
}
