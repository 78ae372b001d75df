package cmd

import (
	"fmt"

	"github.com/jsphweid/tertian/constants"
	"github.com/jsphweid/tertian/db"
	"github.com/jsphweid/tertian/model"
	"github.com/jsphweid/tertian/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show <analysis-id>...",
	Short: "Prints stored analyses",
	Long:  `Fetches analyses saved by "analyze --store" and prints their chord counts.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := db.Connect(constants.GetDynamoEndpoint(), constants.GetAWSRegion(), constants.GetTableName())
		if err != nil {
			return err
		}
		found, err := fetchAll(s, args)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, id := range args {
			a, ok := found[id]
			if !ok {
				fmt.Fprintf(out, "%s: not found\n", id)
				continue
			}
			fmt.Fprintf(out, "%s: %s, %d sonorities, %d skipped\n", id, a.Filename, len(a.Sonorities), a.Skipped)
			for _, label := range util.SortedKeys(a.Counts) {
				fmt.Fprintf(out, "%6d  %s\n", a.Counts[label], label)
			}
		}
		return nil
	},
}

// fetchAll splits ids into batches DynamoDB accepts.
func fetchAll(s *db.Store, ids []string) (map[string]model.Analysis, error) {
	res := make(map[string]model.Analysis)
	for start := 0; start < len(ids); start += constants.MaxBatchGet {
		end := util.Min(start+constants.MaxBatchGet, len(ids))
		batch, err := s.GetAnalyses(ids[start:end])
		if err != nil {
			return nil, err
		}
		for id, a := range batch {
			res[id] = a
		}
	}
	return res, nil
}
