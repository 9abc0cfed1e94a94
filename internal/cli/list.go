package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// listCmd prints a dataset's records in insertion order.
var listCmd = &cobra.Command{
	Use:   "list <dataset>",
	Short: "Print records in insertion order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		vec, err := loadDataset(args[0], cfg)
		if err != nil {
			return err
		}

		shown := 0
		for i, rec := range vec.All() {
			if cfg.MaxShown > 0 && shown >= cfg.MaxShown {
				fmt.Printf("... %d more\n", vec.Len()-shown)
				break
			}
			fmt.Printf("%4d  %s%s%s\n", i, rec.Name, cfg.Delimiter, rec.Value)
			shown++
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
