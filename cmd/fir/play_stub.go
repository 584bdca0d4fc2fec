//go:build !portaudio

package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

func playCommand() *cli.Command {
	return &cli.Command{
		Name:      "play",
		Usage:     "Stream a patch to the default audio output (requires -tags portaudio)",
		ArgsUsage: "[patch]",
		Flags:     runFlags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			return fmt.Errorf("fir was built without portaudio support")
		},
	}
}
