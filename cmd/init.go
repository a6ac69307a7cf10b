package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/prepsite/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize prepsite configuration with an interactive wizard",
	Long:  `Runs an interactive wizard and writes a .prepsite.yml file in the current directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
