package cmd

import (
	"fmt"

	"github.com/jsphweid/tertian/interval"
	"github.com/jsphweid/tertian/pitch"
	"github.com/spf13/cobra"
)

var autoOrder bool

func init() {
	intervalCmd.Flags().BoolVar(&autoOrder, "auto", false, "order the pitches by staff position first")
	rootCmd.AddCommand(intervalCmd)
}

var intervalCmd = &cobra.Command{
	Use:   "interval <low> <high>",
	Short: "Names the interval between two pitches",
	Long: `Names the interval from low up to high, e.g. "tertian interval c1 e1"
prints "major third". A high pitch sounding below the low one gives
"unknown" unless --auto is set.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		loc, err := locale()
		if err != nil {
			return err
		}
		ps, err := pitch.ParseAll(args)
		if err != nil {
			return err
		}

		var iv interval.Interval
		if autoOrder {
			iv = interval.Between(ps[0], ps[1])
		} else {
			iv = interval.Classify(ps[0], ps[1])
		}
		fmt.Fprintln(cmd.OutOrStdout(), iv.Label(loc))
		return nil
	},
}
