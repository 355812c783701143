package main

import (
	"flag"
	"fmt"
	"io"
	"runtime"
	"strings"

	"island-gen/internal/config"
	"island-gen/internal/noise"
)

// options are the command-line settings that do not affect generation.
type options struct {
	view      bool
	grassPath string
	sandPath  string
	cacheDir  string
}

// parseFlags builds generation settings from args. Width and step are
// given on the command-line scale and converted with config.FromScale; the
// result has passed Validate.
func parseFlags(args []string, out io.Writer) (config.WorldGenSettings, options, error) {
	def := config.Default()
	var opts options
	var widthMul, stepExp int

	fs := flag.NewFlagSet("island", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Float64Var(&def.Frequency, "f", def.Frequency, "set frequency   Range: 1~5")
	fs.IntVar(&def.Octaves, "o", def.Octaves, "set octave      Range: 2~20")
	fs.Float64Var(&def.Amplitude, "a", def.Amplitude, "set amplitude   Range: 0.4~0.8")
	fs.Float64Var(&def.Persistence, "p", def.Persistence, "set persistence Range: 0.4~0.6")
	fs.Float64Var(&def.Lacunarity, "l", def.Lacunarity, "set lacunarity  Range: 1~3")
	fs.IntVar(&widthMul, "w", 6, "set width multiplier Range: 1~13 (larger is more detailed)")
	fs.IntVar(&stepExp, "t", 1, "set step exponent Range: 0~5 (larger is more detailed)")
	fs.Int64Var(&def.Seed, "s", def.Seed, "set seed")
	fs.StringVar(&def.Sampler, "noise", def.Sampler, "noise backend: "+strings.Join(noise.SamplerNames(), ", "))
	fs.IntVar(&def.Workers, "workers", runtime.NumCPU(), "heightfield sampling goroutines")
	fs.BoolVar(&opts.view, "view", false, "open an interactive viewer after generating")
	fs.StringVar(&opts.grassPath, "grass", "texture/grass.bmp", "grass texture (BMP or PNG)")
	fs.StringVar(&opts.sandPath, "sand", "texture/sand.bmp", "sand texture (BMP or PNG)")
	fs.StringVar(&opts.cacheDir, "cache", "", "LevelDB directory for reusing generated islands (disabled when empty)")

	if err := fs.Parse(args); err != nil {
		return config.WorldGenSettings{}, options{}, err
	}
	if fs.NArg() > 0 {
		return config.WorldGenSettings{}, options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	var err error
	def.Width, def.Step, err = config.FromScale(widthMul, stepExp)
	if err != nil {
		return config.WorldGenSettings{}, options{}, err
	}
	if err := def.Validate(); err != nil {
		return config.WorldGenSettings{}, options{}, err
	}
	return def, opts, nil
}
