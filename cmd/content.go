package cmd

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Zachkp/portfolio/internal/content"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Print the site's built-in content",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		return writeCatalog(cmd, content.Default(), format)
	},
}

func writeCatalog(cmd *cobra.Command, catalog content.Catalog, format string) error {
	out := cmd.OutOrStdout()
	switch format {
	case "yaml", "":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(catalog); err != nil {
			return errors.Wrap(err, "encoding yaml")
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(catalog), "encoding json")
	default:
		return errors.Errorf("unknown format %q: use yaml or json", format)
	}
}

func init() {
	rootCmd.AddCommand(contentCmd)
	contentCmd.Flags().StringP("format", "f", "yaml", "Output format: yaml or json")
}
