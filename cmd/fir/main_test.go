package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/rhino1998/fir/pkg/patches"
	"github.com/stretchr/testify/require"
)

func TestLoadRunConfig(t *testing.T) {
	r := require.New(t)

	path := filepath.Join(t.TempDir(), "run.toml")
	r.NoError(os.WriteFile(path, []byte(`
patch = "sine"
frames = 4

[params]
"/sine/freq" = 220.0
gain = 1.0
`), 0o644))

	cfg, err := LoadRunConfig(path)
	r.NoError(err)
	r.NoError(cfg.Validate())

	r.Equal("sine", cfg.Patch)
	r.Equal(defaultSampleRate, cfg.SampleRate)
	r.Equal(4, cfg.Frames)
	r.Equal([]string{"/sine/freq", "gain"}, cfg.ParamNames())
	r.Equal(220.0, cfg.Params["/sine/freq"])
}

func TestParseParam(t *testing.T) {
	r := require.New(t)

	name, v, err := parseParam("/sine/freq=110.5")
	r.NoError(err)
	r.Equal("/sine/freq", name)
	r.Equal(110.5, v)

	_, _, err = parseParam("gain")
	r.Error(err)

	_, _, err = parseParam("gain=loud")
	r.Error(err)
}

func TestSetup_State(t *testing.T) {
	r := require.New(t)
	logger := slogt.New(t)

	cfg := defaultRunConfig()
	cfg.Patch = "noise"
	cfg.State = filepath.Join(t.TempDir(), "noise.cbor")
	cfg.Params["gain"] = 1

	inst, err := setup(logger, cfg)
	r.NoError(err)

	frame := inst.NewFrame()
	for i := 0; i < 4; i++ {
		_, err := inst.Tick(frame)
		r.NoError(err)
	}
	r.NoError(saveState(logger, inst, cfg.State))

	expected, err := inst.Tick(frame)
	r.NoError(err)

	resumed, err := setup(logger, cfg)
	r.NoError(err)

	res, err := resumed.Tick(resumed.NewFrame())
	r.NoError(err)
	r.Equal(expected, res)
}

func TestDescribe(t *testing.T) {
	r := require.New(t)

	patch, err := patches.Lookup("select")
	r.NoError(err)

	var buf bytes.Buffer
	r.NoError(describe(&buf, patch.Build(defaultSampleRate)))

	out := buf.String()
	r.Contains(out, "program select\n")
	r.Contains(out, "heap real=2 int=0\n")
	r.Contains(out, "compute -> real")
	r.Contains(out, "  then:\n")
	r.Contains(out, `checkbox "second" [0]`)
}

func TestPrintFrame(t *testing.T) {
	var buf bytes.Buffer
	printFrame(&buf, 3, []float64{0.5, -1})
	require.Equal(t, "3\t0.5\t-1\n", buf.String())
}
