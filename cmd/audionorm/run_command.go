package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"audionorm/internal/pipeline"
)

func runNormalize(cmd *cobra.Command, ctx *commandContext) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	signalCtx, cancel := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	stderr := cmd.ErrOrStderr()
	logger, err := ctx.logger(cfg, stderr)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	opts := []pipeline.Option{
		pipeline.WithOutput(out),
		pipeline.WithColor(shouldColorize(out)),
		pipeline.WithProgress(nil),
	}
	if shouldColorize(stderr) {
		opts = append(opts, pipeline.WithProgress(stderr))
	}

	_, err = pipeline.New(cfg, logger, opts...).Run(signalCtx)
	return err
}
