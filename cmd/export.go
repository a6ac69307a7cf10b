package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/prepsite/internal/catalog"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the catalog as JSON",
	Long: `Encodes the catalog in the topic-file shape. With --topic only that topic is
written, as a file that can be dropped into a catalog directory. Without
--output the JSON is written to stdout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		c, err := loadCatalog(cfg)
		if err != nil {
			return err
		}

		key, _ := cmd.Flags().GetString("topic")
		data, err := exportJSON(c, key)
		if err != nil {
			return err
		}

		out, _ := cmd.Flags().GetString("output")
		if out == "" {
			_, err := os.Stdout.Write(append(data, '\n'))
			return err
		}
		if err := os.WriteFile(out, data, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", out, err)
		}
		fmt.Printf("Catalog exported to %s (%d topics, %d entries)\n", out, len(c.Keys()), c.EntryCount())
		return nil
	},
}

// exportJSON encodes the whole catalog, or a single topic when key is set.
func exportJSON(c *catalog.Catalog, key string) ([]byte, error) {
	if key == "" {
		data, err := catalog.Export(c)
		if err != nil {
			return nil, fmt.Errorf("exporting catalog: %w", err)
		}
		return data, nil
	}
	t := c.Topic(key)
	if t == nil {
		return nil, fmt.Errorf("unknown topic %q (available: %v)", key, c.Keys())
	}
	data, err := catalog.ExportTopic(t)
	if err != nil {
		return nil, fmt.Errorf("exporting topic %s: %w", key, err)
	}
	return data, nil
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "output file (defaults to stdout)")
	exportCmd.Flags().String("topic", "", "export only this topic, in topic-file form")
	rootCmd.AddCommand(exportCmd)
}
