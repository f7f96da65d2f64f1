package main

import (
	"flag"
	"fmt"

	"github.com/BurntSushi/toml"
)

const defaultSamples = 5

// params are the run settings, from flags or a TOML file.
type params struct {
	Alpha   []float64
	Samples int
	Seed    uint64
}

// fileParams is the TOML key mapping for -config files.
type fileParams struct {
	Alpha   []float64 `toml:"alpha"`
	Samples int       `toml:"samples"`
	Seed    int64     `toml:"seed"`
}

func defaultParams() params {
	return params{Samples: defaultSamples}
}

// loadParams reads a TOML parameter file, overlaying the keys it defines on
// the defaults.
func loadParams(path string) (params, error) {
	cfg := defaultParams()

	var raw fileParams
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return params{}, fmt.Errorf("load dirinfo config: %w", err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return params{}, fmt.Errorf("load dirinfo config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("alpha") {
		cfg.Alpha = raw.Alpha
	}
	if meta.IsDefined("samples") {
		cfg.Samples = raw.Samples
	}
	if meta.IsDefined("seed") {
		if raw.Seed < 0 {
			return params{}, fmt.Errorf("load dirinfo config: seed must be >= 0: %d", raw.Seed)
		}

		cfg.Seed = uint64(raw.Seed)
	}

	return cfg, nil
}

// overlayFlags applies the -n and -seed flags that were set explicitly on fs,
// so they take precedence over values from a parameter file.
func overlayFlags(fs *flag.FlagSet, p params) params {
	fs.Visit(func(f *flag.Flag) {
		getter, ok := f.Value.(flag.Getter)
		if !ok {
			return
		}

		switch f.Name {
		case "n":
			p.Samples = getter.Get().(int)
		case "seed":
			p.Seed = getter.Get().(uint64)
		}
	})

	return p
}
