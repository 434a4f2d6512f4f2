// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Config is the root-level settings struct, populated from
// command line arguments via Viper
type Config struct {
	// the path to the tab-separated assembly map, first column is the locus id
	Map string `mapstructure:"map"`

	// the path to the directory holding one alignment directory per locus
	Alignments string `mapstructure:"alignments"`

	// the path of the output table to write
	Out string `mapstructure:"out"`

	// the number of loci to assess in parallel
	CPUs int `mapstructure:"cpus"`

	// optional isolate prefix; when set, only alignment files whose
	// name starts with it are assessed
	Priority string `mapstructure:"priority"`

	// whether to report only the best hit per locus or every hit
	BestOnly bool `mapstructure:"best-only"`

	// the assembly type that produced the sequences: "contig" or "scaffold"
	Type string `mapstructure:"type"`

	// whether to suppress the progress bar
	Quiet bool `mapstructure:"quiet"`
}

// New returns a new Config struct populated by Viper settings
func New() Config {
	var c Config

	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings into struct: %v", err)
	}

	return c
}

// Validate checks the settings that every assessment run depends on.
// A violation here is fatal before any locus is dispatched.
func (c Config) Validate() error {
	if c.Map == "" {
		return fmt.Errorf("no assembly map path set")
	}

	if c.Alignments == "" {
		return fmt.Errorf("no alignment directory path set")
	}

	if c.Out == "" {
		return fmt.Errorf("no output table path set")
	}

	if c.CPUs < 1 {
		return fmt.Errorf("cpu count must be positive, got %d", c.CPUs)
	}

	return nil
}
