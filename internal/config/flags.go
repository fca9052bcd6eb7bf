package config

import "flag"

// Flags are command-line overrides shared by the tools.
type Flags struct {
	Path       string
	Debug      bool
	FrameDelta float64
	LogFile    string
}

// Register adds the flags to a flag set.
func (f *Flags) Register(fs *flag.FlagSet) {
	fs.StringVar(&f.Path, "config", "", "path to YAML config file")
	fs.BoolVar(&f.Debug, "debug", false, "enable debug logging")
	fs.Float64Var(&f.FrameDelta, "frame-delta", 0, "time between frames for motion vectors")
	fs.StringVar(&f.LogFile, "log-file", "", "path to a rotating log file")
}

// Load loads the config file and applies the overrides.
func (f *Flags) Load() (*Config, error) {
	cfg, err := Load(f.Path)
	if err != nil {
		return nil, err
	}
	f.apply(cfg)
	return cfg, nil
}

func (f *Flags) apply(cfg *Config) {
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.FrameDelta > 0 {
		cfg.Sweep.FrameDelta = f.FrameDelta
	}
	if f.LogFile != "" {
		cfg.Logging.LogFile = f.LogFile
	}
}
