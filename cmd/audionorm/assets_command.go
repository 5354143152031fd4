package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"audionorm/internal/assets"
	"audionorm/internal/textutil"
)

func newAssetsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "assets",
		Short: "List the configured assets and their CDN URLs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			list := assets.FromPaths(cfg.Assets)
			rows := make([][]string, 0, len(list))
			for _, a := range list {
				format := string(assets.FormatOf(a.Path))
				if format == "" {
					format = "unsupported"
				}
				rows = append(rows, []string{
					a.Path,
					textutil.Title(a.Category),
					format,
					assets.URL(cfg.CDN.BaseURL, a.Path),
				})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, textutil.Table([]string{"Path", "Category", "Format", "URL"}, rows, nil))
			fmt.Fprintf(out, "%d assets\n", len(list))
			return nil
		},
	}
}
