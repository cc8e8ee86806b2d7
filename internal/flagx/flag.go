// Package flagx lets several components share one command line: each picks
// out only the flags it owns before handing them to its own flag.FlagSet.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// Flags maps a flag name (with its leading dashes, e.g. "-d") to whether it
// takes a value as the following argument. Boolean flags map to false; they
// still accept the "-m=false" form.
type Flags map[string]bool

// FilterArgs returns the arguments in args that belong to flags, in their
// original order. Both "-d value" and "-d=value" are recognized. A valued
// flag whose next argument starts with "-" is kept without a value.
//
// The result is never nil.
func FilterArgs(args []string, flags Flags) []string {
	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if name, _, ok := strings.Cut(arg, "="); ok && strings.HasPrefix(arg, "-") {
			if _, known := flags[name]; known {
				filtered = append(filtered, arg)
			}
			continue
		}

		valued, known := flags[arg]
		if !known {
			continue
		}
		filtered = append(filtered, arg)
		if valued && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

// ConfigFile extracts the JSON config path given with -c or -config, or ""
// when neither is present.
func ConfigFile(args []string) string {
	var path string

	fs := flag.NewFlagSet("config-file", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&path, "config", "", "path to JSON config file")
	fs.StringVar(&path, "c", "", "path to JSON config file (short)")
	_ = fs.Parse(FilterArgs(args, Flags{"-c": true, "-config": true, "--config": true, "--c": true}))

	return path
}
