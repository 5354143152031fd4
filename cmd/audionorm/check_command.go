package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"audionorm/internal/deps"
	"audionorm/internal/preflight"
)

var errChecksFailed = errors.New("preflight checks failed")

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify ffmpeg, the work directory and CDN reachability",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			configDetail := "defaults (no config file)"
			if ctx.configFile {
				configDetail = ctx.configPath
			}

			for _, line := range renderSectionHeader("Environment", colorize) {
				fmt.Fprintln(out, line)
			}
			fmt.Fprintln(out, renderStatusLine("Config", statusInfo, configDetail, colorize))

			results := preflight.RunAll(cmd.Context(), cfg)
			for _, r := range results {
				kind := statusOK
				if !r.Passed {
					kind = statusError
				}
				fmt.Fprintln(out, renderStatusLine(r.Name, kind, r.Detail, colorize))
			}

			if len(deps.Missing(preflight.CheckSystemDeps(cfg))) > 0 {
				fmt.Fprintln(out)
				fmt.Fprintln(out, "Install ffmpeg (ffprobe ships with it):")
				for _, hint := range deps.InstallHint() {
					fmt.Fprintf(out, "  %s\n", hint)
				}
			}

			if len(preflight.Failed(results)) > 0 {
				return errChecksFailed
			}
			return nil
		},
	}
}
