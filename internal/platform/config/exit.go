package config

import (
	"fmt"
	"os"
)

// Exitf prints the message to stderr and terminates with exit code 1.
// The spoils entry points use it for unrecoverable startup errors.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
