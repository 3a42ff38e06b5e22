package commands

import "strings"

// multiValueFlags take every following non-flag argument as another value.
var multiValueFlags = map[string]bool{
	"-s":       true,
	"--source": true,
	"-t":       true,
	"--target": true,
}

// normalizeArgs rewrites "-s a b" to "-s a -s b". Arguments after "--" are
// never touched.
func normalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))

	var flag string
	var taken bool
	for i, arg := range args {
		if arg == "--" {
			return append(out, args[i:]...)
		}

		name, _, hasValue := strings.Cut(arg, "=")
		switch {
		case multiValueFlags[arg]:
			flag, taken = arg, false
			out = append(out, arg)
		case hasValue && multiValueFlags[name]:
			flag, taken = name, true
			out = append(out, arg)
		case flag != "" && !taken:
			// The first value belongs to the flag even if it looks like one.
			taken = true
			out = append(out, arg)
		case strings.HasPrefix(arg, "-"):
			flag = ""
			out = append(out, arg)
		case flag != "":
			out = append(out, flag, arg)
		default:
			out = append(out, arg)
		}
	}

	return out
}
