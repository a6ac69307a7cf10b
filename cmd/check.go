package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/prepsite/internal/catalog"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report problems in the catalog",
	Long: `Loads the catalog and lists findings such as duplicate entry ids, ragged
table rows and unknown entry types. Findings never stop a build; only load
errors fail, unless --strict is given and there are warnings.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Bool("strict", false, "exit non-zero when there are warnings")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	c, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	ds := catalog.Check(c)
	printDiagnostics(os.Stdout, ds)
	warnings := len(catalog.Warnings(ds))
	fmt.Printf("Checked %d topics, %d entries: %d findings, %d warnings\n",
		len(c.Keys()), c.EntryCount(), len(ds), warnings)

	strict, _ := cmd.Flags().GetBool("strict")
	if strict && warnings > 0 {
		return fmt.Errorf("%d catalog warnings", warnings)
	}
	return nil
}
