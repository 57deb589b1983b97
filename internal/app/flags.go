package app

import "flag"

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim    string
	Scale  int
	TickMS int
	Seed   int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "forest", Scale: 8, TickMS: 1000, Seed: 1337}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TickMS, "tick", c.TickMS, "milliseconds of wall clock per simulation tick")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
}
