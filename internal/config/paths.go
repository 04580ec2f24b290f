package config

import (
	"os"
	"path/filepath"
	"strings"
)

// expandPath resolves $VAR references and a leading ~ in a configured
// directory such as log_dir. If the home directory is unknown the path is
// returned with only the variables expanded.
func expandPath(p string) string {
	p = os.ExpandEnv(p)

	rest, ok := strings.CutPrefix(p, "~")
	if !ok || (rest != "" && !strings.HasPrefix(rest, "/") && !strings.HasPrefix(rest, string(filepath.Separator))) {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, rest)
}
