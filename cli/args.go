// Copyright © 2021 Optable Technologies Inc. All rights reserved.
// See LICENSE for details.
package cli

import (
	"strings"

	"github.com/alecthomas/kong"
)

// PositionalArgs reorders args so that every argument which is not one of
// the parser's flags (or a flag value) comes after a `--` terminator. Kong
// would otherwise read an amount like "-1 kb" as the short flag -1.
func PositionalArgs(parser *kong.Kong, args []string) []string {
	valueFlags, boolFlags := flagNames(parser)

	var flags, positionals []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		name := arg
		if eq := strings.IndexByte(arg, '='); eq > 0 && strings.HasPrefix(arg, "--") {
			name = arg[:eq]
		}

		switch {
		case arg == "--":
			positionals = append(positionals, args[i+1:]...)
			i = len(args)
		case boolFlags[name]:
			flags = append(flags, arg)
		case valueFlags[name]:
			flags = append(flags, arg)
			// The value is the next argument unless it was given with `=`.
			if name == arg && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		default:
			positionals = append(positionals, arg)
		}
	}

	if len(positionals) == 0 {
		return flags
	}
	return append(append(flags, "--"), positionals...)
}

func flagNames(parser *kong.Kong) (valueFlags, boolFlags map[string]bool) {
	valueFlags = make(map[string]bool)
	boolFlags = map[string]bool{"--help": true, "-h": true}

	for _, flag := range parser.Model.Node.Flags {
		names := []string{"--" + flag.Name}
		if flag.Short != 0 {
			names = append(names, "-"+string(flag.Short))
		}

		for _, name := range names {
			if flag.IsBool() {
				boolFlags[name] = true
			} else {
				valueFlags[name] = true
			}
		}
	}

	return valueFlags, boolFlags
}
