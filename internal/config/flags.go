package config

import "flag"

var (
	flagConfig       = flag.String("config", "", "Path to config file")
	flagDebug        = flag.Bool("debug", false, "Enable debug logging")
	flagScheme       = flag.String("scheme", "", "Subdivision scheme (catmark, bilinear, loop)")
	flagLevel        = flag.Int("level", -1, "Refinement level")
	flagAdaptive     = flag.Bool("adaptive", false, "Refine adaptively around irregular features")
	flagMasks        = flag.Bool("masks", false, "Compute refinement masks")
	flagFullTopology = flag.Bool("full-topology", false, "Keep full topology on the last level")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the arguments remaining after flags.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagScheme != "" {
		cfg.Scheme.Type = *flagScheme
	}
	if *flagLevel >= 0 {
		cfg.Refine.Level = *flagLevel
	}
	if *flagAdaptive {
		cfg.Refine.Mode = ModeAdaptive
	}
	if *flagMasks {
		cfg.Refine.ComputeMasks = true
	}
	if *flagFullTopology {
		cfg.Refine.FullTopology = true
	}
}
