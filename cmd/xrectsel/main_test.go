package main

import (
	"testing"

	"xrectsel/config"
)

func TestResolveFormat(t *testing.T) {
	cfg := &config.Config{Format: config.DefaultFormat}

	if got := resolveFormat(cfg, nil); got != config.DefaultFormat {
		t.Errorf("resolveFormat with no args = %q, want default %q", got, config.DefaultFormat)
	}
	if got := resolveFormat(cfg, []string{"%x %y"}); got != "%x %y" {
		t.Errorf("resolveFormat with arg = %q, want %q", got, "%x %y")
	}
}
