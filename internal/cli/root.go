package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/LeJamon/namedvec/internal/config"
)

var (
	// Global flags
	configFile string
	verbose    bool

	// cfg holds the loaded configuration for every subcommand.
	cfg *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "namedvec",
	Short: "namedvec - query name/value datasets",
	Long: `namedvec loads datasets of name/value lines into a copy-on-write
named vector and answers positional and first-match name queries against
them. Duplicate names are allowed; lookups resolve to the earliest record
carrying the name.`,
	Version:       "0.1.0-dev",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configFile, "conf", "", "configuration file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// initConfig reads in the config file and NAMEDVEC_ environment variables.
func initConfig() {
	loaded, err := config.LoadConfig(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg = loaded

	if verbose {
		fmt.Fprintf(os.Stderr, "delimiter=%q reserve=%d max_shown=%d cache_size=%d\n",
			cfg.Delimiter, cfg.Reserve, cfg.MaxShown, cfg.CacheSize)
	}
}
