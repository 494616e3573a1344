// Package config loads the pricing constants file and the runtime settings of the policy desk.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath resolves a configured data file path. Environment variables are
// substituted first, so OSIC_DATA=~/osic works, then a leading ~ becomes the
// home directory. The home prefix is left alone when it cannot be determined.
func ExpandPath(path string) string {
	path = os.ExpandEnv(path)

	rest, ok := strings.CutPrefix(path, "~")
	if !ok || (rest != "" && !strings.HasPrefix(rest, "/")) {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, rest)
}
