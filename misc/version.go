// Package misc keeps build time information.
package misc

import (
	"os"
	"path/filepath"
	"strings"
)

// set by linker
var (
	version = "dev"
	githash = "unknown"
	appname = ""
)

// GetVersion returns program version set at build time.
func GetVersion() string {
	return version
}

// GetGitHash returns git commit the program was built from.
func GetGitHash() string {
	return githash
}

// GetAppName returns program name without extension.
func GetAppName() string {
	if len(appname) > 0 {
		return appname
	}
	return strings.TrimSuffix(filepath.Base(os.Args[0]), filepath.Ext(os.Args[0]))
}
