package config

import (
	"strings"
)

// CleanFileName makes a single file name out of arbitrary text, usually
// relative path of the source: path separators become "_", characters not
// allowed by the platform are removed, leading dots are dropped.
func CleanFileName(in string) string {
	out := strings.Map(func(sym rune) rune {
		switch {
		case sym == '/' || sym == '\\':
			return '_'
		case sym == 0 || strings.ContainsRune(forbiddenInNames, sym):
			return -1
		}
		return sym
	}, in)
	out = strings.TrimLeft(strings.TrimSpace(out), ".")
	if len(out) == 0 {
		out = "_bad_file_name_"
	}
	return out
}
