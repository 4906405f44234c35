package main

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"tokgen/internal/diagfmt"
	"tokgen/internal/pipeline"
)

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [dir]",
		Short: "Print the token catalog",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runShow,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json|yaml)")
	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	cfg, err := loadManifest(args)
	if err != nil {
		return err
	}
	c, err := pipeline.BuildCatalog(afero.NewOsFs(), cfg)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	switch strings.ToLower(format) {
	case "pretty":
		return diagfmt.FormatCatalogPretty(out, c)
	case "json":
		return diagfmt.FormatCatalogJSON(out, c)
	case "yaml":
		return diagfmt.FormatCatalogYAML(out, c)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
