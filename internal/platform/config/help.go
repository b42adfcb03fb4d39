// internal/platform/config/help.go
package config

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
)

// printUsage writes the CLI help text to stderr.
func printUsage(fs *pflag.FlagSet) {
	fmt.Fprintln(os.Stderr, "sublance - subdomain enumeration via passive sources and DNS brute force")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  sublance [flags] <domain> [<domain>...]")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintln(os.Stderr, "  sublance example.com")
	fmt.Fprintln(os.Stderr, "  sublance -w 100 --wordlist labels.txt example.com example.org")
	fmt.Fprintln(os.Stderr, "  sublance --passive=false -d example.com")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Flags:")
	fmt.Fprintln(os.Stderr, fs.FlagUsages())
}
