package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// statsCmd summarizes a dataset after loading it.
var statsCmd = &cobra.Command{
	Use:   "stats <dataset>",
	Short: "Show record count and duplicate-name summary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		vec, err := loadDataset(args[0], cfg)
		if err != nil {
			return err
		}

		seen := make(map[string]int)
		for _, rec := range vec.All() {
			seen[rec.Name]++
		}
		duplicates := 0
		for _, n := range seen {
			if n > 1 {
				duplicates++
			}
		}

		fmt.Printf("records:    %d\n", vec.Len())
		fmt.Printf("capacity:   %d\n", vec.Cap())
		fmt.Printf("names:      %d distinct\n", len(seen))
		fmt.Printf("duplicated: %d names\n", duplicates)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
