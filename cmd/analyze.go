package cmd

import (
	"fmt"

	"github.com/jsphweid/tertian/analysis"
	"github.com/jsphweid/tertian/constants"
	"github.com/jsphweid/tertian/db"
	"github.com/jsphweid/tertian/logging"
	"github.com/jsphweid/tertian/model"
	"github.com/jsphweid/tertian/util"
	"github.com/spf13/cobra"
)

var (
	maxFiles int
	store    bool
)

func init() {
	analyzeCmd.Flags().IntVar(&maxFiles, "max", 0, "stop after this many files (0 for all)")
	analyzeCmd.Flags().BoolVar(&store, "store", false, "save each analysis to DynamoDB")
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [path]",
	Short: "Classifies the chords of MIDI files",
	Long: `Walks path (MEDIA_PATH by default) for MIDI files and classifies every
three and four note sonority in them, then prints how often each chord
label occurred.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		loc, err := locale()
		if err != nil {
			return err
		}
		root := constants.GetMediaDir()
		if len(args) == 1 {
			root = args[0]
		}

		paths, err := util.GatherAllMidiPaths(root, maxFiles)
		if err != nil {
			return fmt.Errorf("gathering midi files under %s: %w", root, err)
		}
		analyses := analysis.New(loc).ProcessAllMidiFiles(paths)

		if store {
			if err := storeAnalyses(analyses); err != nil {
				return err
			}
		}

		printSummary(cmd, analyses)
		return nil
	},
}

func storeAnalyses(analyses []model.Analysis) error {
	s, err := db.Connect(constants.GetDynamoEndpoint(), constants.GetAWSRegion(), constants.GetTableName())
	if err != nil {
		return err
	}
	for _, a := range analyses {
		if err := s.PutAnalysis(a); err != nil {
			return err
		}
	}
	logging.Info("stored analyses", logging.Fields{"count": len(analyses), "table": constants.GetTableName()})
	return nil
}

func printSummary(cmd *cobra.Command, analyses []model.Analysis) {
	counts := make(map[string]int)
	var skipped []int
	for _, a := range analyses {
		for label, n := range a.Counts {
			counts[label] += n
		}
		skipped = append(skipped, a.Skipped)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%d files\n", len(analyses))
	for _, label := range util.SortedKeys(counts) {
		fmt.Fprintf(out, "%6d  %s\n", counts[label], label)
	}
	fmt.Fprintf(out, "%6d  skipped sonorities\n", util.Sum(skipped))
}
