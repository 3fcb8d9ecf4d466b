// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestConfig_defaults(t *testing.T) {
	viper.Reset()

	c := New()
	if c.AllowEmptyArrays {
		t.Error("expected empty arrays to be rejected by default")
	}
	if c.GFFSource != "pilercr" {
		t.Errorf("expected default GFF source pilercr, got %s", c.GFFSource)
	}
	if c.JSONIndent != "  " {
		t.Errorf("expected two-space JSON indent, got %q", c.JSONIndent)
	}
}

func TestConfig_overrides(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.Set("allow-empty-arrays", true)
	viper.Set("gff-source", "pilercr-1.06")

	c := New()
	if !c.AllowEmptyArrays {
		t.Error("expected empty arrays to be allowed")
	}
	if c.GFFSource != "pilercr-1.06" {
		t.Errorf("expected GFF source pilercr-1.06, got %s", c.GFFSource)
	}
}
