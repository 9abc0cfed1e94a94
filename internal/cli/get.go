package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LeJamon/namedvec/index"
)

// getCmd resolves one or more names against a dataset.
var getCmd = &cobra.Command{
	Use:   "get <dataset> <name> [name...]",
	Short: "Look up the first record matching each name",
	Long: `Load the dataset and print the value of the first record carrying each
requested name. Repeated names hit the lookup cache instead of rescanning.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		vec, err := loadDataset(args[0], cfg)
		if err != nil {
			return err
		}

		idx, err := index.New(vec, cfg.CacheSize)
		if err != nil {
			return fmt.Errorf("failed to build lookup index: %w", err)
		}

		for _, name := range args[1:] {
			value, err := idx.Value(name)
			if err != nil {
				return err
			}
			fmt.Printf("%s%s%s\n", name, cfg.Delimiter, value)
		}

		if verbose {
			hits, misses := idx.Metrics()
			fmt.Fprintf(cmd.ErrOrStderr(), "cache: %d hits, %d misses\n", hits, misses)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
