package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/prepsite/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "prepsite",
	Short: "Publish a frontend interview study guide as a site or a terminal browser",
	Long: `prepsite turns a catalog of interview topics (comparison tables, code
examples, tips) into a single static study page with section navigation and
a reading progress bar. The same catalog can be browsed in the terminal.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultConfigFile, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
