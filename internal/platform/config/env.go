// Package config wires process configuration for the spoils binaries.
// All knobs come from SPOILS_-prefixed environment variables declared as
// struct tags on each command's config type.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ParseEnv fills target from the process environment according to its
// env struct tags.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
