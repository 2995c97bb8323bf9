package lootctl

import (
	"flag"
	"testing"
	"time"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("lootctl", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"sessions"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.GRPCAddr != "localhost:8095" {
		t.Fatalf("addr = %q, want localhost:8095", cfg.GRPCAddr)
	}
	if cfg.Timeout != 10*time.Second {
		t.Fatalf("timeout = %v, want 10s", cfg.Timeout)
	}
	if cfg.Command != "sessions" {
		t.Fatalf("command = %q, want sessions", cfg.Command)
	}
}

func TestParseConfigSubcommandArgs(t *testing.T) {
	fs := flag.NewFlagSet("lootctl", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-addr", "127.0.0.1:9000", "claim", "1", "7", "2"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.GRPCAddr != "127.0.0.1:9000" {
		t.Fatalf("addr = %q, want override", cfg.GRPCAddr)
	}
	if cfg.Command != "claim" {
		t.Fatalf("command = %q, want claim", cfg.Command)
	}
	if len(cfg.Args) != 3 {
		t.Fatalf("args len = %d, want 3", len(cfg.Args))
	}
}

func TestParseConfigRequiresCommand(t *testing.T) {
	fs := flag.NewFlagSet("lootctl", flag.ContinueOnError)
	if _, err := ParseConfig(fs, nil); err == nil {
		t.Fatal("expected an error without a subcommand")
	}
}

func TestParseUints(t *testing.T) {
	ids, err := parseUints("claim <unit> <player> <entry>", []string{"1", "7", "2"}, 3)
	if err != nil {
		t.Fatalf("parseUints: %v", err)
	}
	if ids[0] != 1 || ids[1] != 7 || ids[2] != 2 {
		t.Fatalf("ids = %v", ids)
	}

	if _, err := parseUints("public <unit>", []string{"x"}, 1); err == nil {
		t.Fatal("expected an error for a non-numeric id")
	}
	if _, err := parseUints("public <unit>", nil, 1); err == nil {
		t.Fatal("expected a usage error for missing args")
	}
}
