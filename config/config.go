// Package config parses the flags and environment variables that
// control how the engine is run: which board variant to play, how long
// the search is allowed per move, and how verbosely to log.
package config

import "github.com/namsral/flag"

// Config holds the resolved settings for one engine run. Values can
// come from the command line, environment variables (prefixed
// BLOKUSDUO_), or the defaults below, in that order of precedence,
// matching namsral/flag's usual resolution order.
type Config struct {
	Variant     string // "standard" or "mini"
	StopMs      int    // soft deadline for a single NegaScout call
	TimeoutMs   int    // hard deadline; a slow iteration is abandoned past this
	WLDTimeoutS int    // seconds allotted to the WLD solver near the endgame
	LogLevel    string // zerolog level name: debug, info, warn, error
	Seed        int64  // parsed but not read anywhere: opening moves always use frand's system-seeded RNG
}

// Load parses args (typically os.Args[1:]) into a Config, applying
// defaults for anything not set on the command line or in the
// environment.
func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSetWithEnvPrefix("blokusduo", "BLOKUSDUO", flag.ContinueOnError)
	fs.StringVar(&c.Variant, "variant", "standard", "board variant to play: standard or mini")
	fs.IntVar(&c.StopMs, "stop-ms", 5000, "soft time budget per move, in milliseconds")
	fs.IntVar(&c.TimeoutMs, "timeout-ms", 8000, "hard time budget per move, in milliseconds")
	fs.IntVar(&c.WLDTimeoutS, "wld-timeout-s", 30, "time budget for the endgame win/loss/draw solver, in seconds")
	fs.StringVar(&c.LogLevel, "log-level", "info", "log verbosity: debug, info, warn, error")
	fs.Int64Var(&c.Seed, "seed", 0, "RNG seed (unused: opening moves are drawn from the system-seeded RNG)")
	return fs.Parse(args)
}
