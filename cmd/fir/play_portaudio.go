//go:build portaudio

package main

import (
	"context"
	"fmt"

	pa "github.com/gordonklaus/portaudio"
	"github.com/urfave/cli/v3"
)

const playBufferLen = 512

func playCommand() *cli.Command {
	return &cli.Command{
		Name:      "play",
		Usage:     "Stream a patch to the default audio output",
		ArgsUsage: "[patch]",
		Flags:     runFlags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, err := runConfig(c)
			if err != nil {
				return err
			}

			if !c.IsSet("frames") && c.String("config") == "" {
				cfg.Frames = 0
			}

			logger := newLogger(c.Bool("debug"))

			inst, err := setup(logger, cfg)
			if err != nil {
				return err
			}

			channels := inst.Program().NumOutputs
			if channels == 0 {
				return fmt.Errorf("patch %s has no outputs", cfg.Patch)
			}

			err = pa.Initialize()
			if err != nil {
				return fmt.Errorf("unable to set up portaudio: %w", err)
			}
			defer pa.Terminate()

			out := make([][]float32, channels)
			for ch := range out {
				out[ch] = make([]float32, playBufferLen)
			}

			stream, err := pa.OpenDefaultStream(0, channels, float64(cfg.SampleRate), playBufferLen, &out)
			if err != nil {
				return fmt.Errorf("unable to open default output: %w", err)
			}
			defer stream.Close()

			err = stream.Start()
			if err != nil {
				return err
			}
			defer stream.Stop()

			logger.Info("playing", "patch", cfg.Patch, "sample_rate", cfg.SampleRate, "channels", channels)

			// A zero frame count plays until interrupted.
			frame := inst.NewFrame()
			for n := 0; cfg.Frames == 0 || n < cfg.Frames; n += playBufferLen {
				if ctx.Err() != nil {
					break
				}

				for i := 0; i < playBufferLen; i++ {
					_, err := inst.Tick(frame)
					if err != nil {
						return err
					}

					for ch, v := range frame.Outputs {
						out[ch][i] = float32(v)
					}
				}

				err = stream.Write()
				if err != nil {
					return fmt.Errorf("write error: %w", err)
				}
			}

			return saveState(logger, inst, cfg.State)
		},
	}
}
