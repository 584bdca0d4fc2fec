package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/rhino1998/fir/pkg/dsp"
	"github.com/rhino1998/fir/pkg/fir"
	"github.com/rhino1998/fir/pkg/patches"
	"github.com/rhino1998/fir/pkg/ui"
	"github.com/urfave/cli/v3"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cmd := &cli.Command{
		Name:  "fir",
		Usage: "Run FIR programs on the tree interpreter",
		Commands: []*cli.Command{
			{
				Name:  "patches",
				Usage: "List the built-in patches",
				Action: func(ctx context.Context, c *cli.Command) error {
					for _, patch := range patches.All() {
						fmt.Printf("%-8s %s\n", patch.Name, patch.Description)
					}

					return nil
				},
			},
			{
				Name:      "describe",
				Usage:     "Print the instruction listing and layout of a patch",
				ArgsUsage: "<patch>",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "sample-rate",
						Value: defaultSampleRate,
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					if c.Args().Len() != 1 {
						return fmt.Errorf("must provide exactly one patch name as argument")
					}

					patch, err := patches.Lookup(c.Args().First())
					if err != nil {
						return err
					}

					return describe(os.Stdout, patch.Build(int(c.Int("sample-rate"))))
				},
			},
			{
				Name:      "render",
				Usage:     "Run a patch for a number of frames and print its outputs",
				ArgsUsage: "[patch]",
				Flags:     runFlags(),
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := runConfig(c)
					if err != nil {
						return err
					}

					logger := newLogger(c.Bool("debug"))

					inst, err := setup(logger, cfg)
					if err != nil {
						return err
					}

					frame := inst.NewFrame()
					for i := 0; i < cfg.Frames; i++ {
						if err := ctx.Err(); err != nil {
							return err
						}

						_, err := inst.Tick(frame)
						if err != nil {
							return fmt.Errorf("frame %d: %w", i, err)
						}

						printFrame(os.Stdout, i, frame.Outputs)
					}

					return saveState(logger, inst, cfg.State)
				},
			},
			playCommand(),
		},
	}

	err := cmd.Run(ctx, os.Args)
	if err != nil {
		log.Fatalln(err)
	}
}

func runFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "TOML run file",
		},
		&cli.IntFlag{
			Name:  "sample-rate",
			Value: defaultSampleRate,
		},
		&cli.IntFlag{
			Name:    "frames",
			Aliases: []string{"n"},
			Value:   defaultFrames,
		},
		&cli.StringSliceFlag{
			Name:    "param",
			Aliases: []string{"p"},
			Usage:   "set a parameter, path=value",
		},
		&cli.StringFlag{
			Name:  "state",
			Usage: "CBOR heap snapshot restored before and saved after the run",
		},
		&cli.BoolFlag{
			Name:    "debug",
			Aliases: []string{"d"},
		},
	}
}

// runConfig merges the run file, if any, with the command line. Flags
// given explicitly win.
func runConfig(c *cli.Command) (*RunConfig, error) {
	cfg := defaultRunConfig()

	if path := c.String("config"); path != "" {
		var err error
		cfg, err = LoadRunConfig(path)
		if err != nil {
			return nil, err
		}
	}

	if c.Args().Len() > 0 {
		cfg.Patch = c.Args().First()
	}

	if c.IsSet("sample-rate") || cfg.SampleRate == 0 {
		cfg.SampleRate = int(c.Int("sample-rate"))
	}

	if c.IsSet("frames") {
		cfg.Frames = int(c.Int("frames"))
	}

	if c.IsSet("state") {
		cfg.State = c.String("state")
	}

	for _, param := range c.StringSlice("param") {
		name, v, err := parseParam(param)
		if err != nil {
			return nil, err
		}

		cfg.Params[name] = v
	}

	return cfg, cfg.Validate()
}

func newLogger(debug bool) *slog.Logger {
	if !debug {
		return slog.Default()
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// setup builds an initialized instance with its state restored and its
// parameters applied.
func setup(logger *slog.Logger, cfg *RunConfig) (*dsp.Instance, error) {
	patch, err := patches.Lookup(cfg.Patch)
	if err != nil {
		return nil, err
	}

	inst, err := dsp.New(logger, patch.Build(cfg.SampleRate))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize instance: %w", err)
	}

	err = inst.Init()
	if err != nil {
		return nil, err
	}

	err = loadState(logger, inst, cfg.State)
	if err != nil {
		return nil, err
	}

	params := ui.NewMap()

	var builder ui.Builder = params
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		builder = ui.Tee{params, ui.NewPrinter(logger)}
	}

	err = inst.BuildUserInterface(builder)
	if err != nil {
		return nil, fmt.Errorf("failed to build user interface: %w", err)
	}

	for _, name := range cfg.ParamNames() {
		err := params.Set(name, cfg.Params[name])
		if err != nil {
			return nil, err
		}
	}

	return inst, nil
}

func loadState(logger *slog.Logger, inst *dsp.Instance, path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Debug("no saved state", "path", path)
		return nil
	} else if err != nil {
		return fmt.Errorf("failed to read state: %w", err)
	}

	snap, err := dsp.UnmarshalSnapshot(data)
	if err != nil {
		return err
	}

	return inst.Restore(snap)
}

func saveState(logger *slog.Logger, inst *dsp.Instance, path string) error {
	if path == "" {
		return nil
	}

	data, err := dsp.MarshalSnapshot(inst.Snapshot())
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	logger.Debug("saving state", "path", path, "bytes", len(data))

	return os.WriteFile(path, data, 0o644)
}

func printFrame(w io.Writer, i int, outputs []float64) {
	fields := make([]string, 0, len(outputs)+1)
	fields = append(fields, strconv.Itoa(i))
	for _, v := range outputs {
		fields = append(fields, strconv.FormatFloat(v, 'g', -1, 64))
	}

	fmt.Fprintln(w, strings.Join(fields, "\t"))
}

func describe(w io.Writer, prog *fir.Program) error {
	depth, err := prog.Validate()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "program %s\n", prog.Name)
	fmt.Fprintf(w, "heap real=%d int=%d\n", prog.RealHeapSize, prog.IntHeapSize)
	fmt.Fprintf(w, "channels in=%d out=%d\n", prog.NumInputs, prog.NumOutputs)
	for _, meta := range prog.Meta {
		fmt.Fprintf(w, "declare %s %q\n", meta.Key, meta.Value)
	}

	if prog.Init != nil {
		fmt.Fprintf(w, "\ninit -> %v (stack %v)\n", prog.InitKind, depth.Init)
		err = fir.Fprint(w, prog.Init)
		if err != nil {
			return err
		}
	}

	fmt.Fprintf(w, "\ncompute -> %v (stack %v)\n", prog.ComputeKind, depth.Compute)
	err = fir.Fprint(w, prog.Compute)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "\nui\n")
	return fir.FprintUI(w, prog.UI)
}
