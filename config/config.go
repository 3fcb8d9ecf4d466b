// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config is the root-level settings struct. Every field maps to a flag
// bound to Viper in /cmd, so values can come from the command line or
// from a settings file
type Config struct {
	// keep arrays that closed without any repeat-spacer rows instead
	// of treating them as malformed input
	AllowEmptyArrays bool `mapstructure:"allow-empty-arrays"`

	// value of the source column on exported GFF features
	GFFSource string `mapstructure:"gff-source"`

	// indentation used for JSON output
	JSONIndent string `mapstructure:"json-indent"`
}

// New returns a new Config struct populated by Viper settings
func New() Config {
	viper.SetDefault("allow-empty-arrays", false)
	viper.SetDefault("gff-source", "pilercr")
	viper.SetDefault("json-indent", "  ")

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings into struct, %v", err)
	}
	return c
}
