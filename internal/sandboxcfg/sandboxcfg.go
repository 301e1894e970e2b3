// Package sandboxcfg loads the optional [sandbox] configuration table that
// controls privilege-drop behavior after the capture handle is open.
package sandboxcfg

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the top-level TOML document. Only the [sandbox] table is
// currently recognized; unknown tables/keys are ignored rather than
// rejected, so future config sections don't break old config files.
type Config struct {
	Sandbox Sandbox `toml:"sandbox"`
}

// Sandbox controls the optional post-capture privilege drop: switch to
// User (looked up via the system's user database) and, if Chroot is set,
// chroot into that directory before spawning workers.
type Sandbox struct {
	User   string `toml:"user"`
	Chroot string `toml:"chroot"`
}

// searchPaths returns the config file locations this program checks, in
// order, the same three-tier system/local/user search spec.md's external
// interfaces section specifies.
func searchPaths() []string {
	paths := []string{
		"/etc/sniffglue.conf",
		"/usr/local/etc/sniffglue.conf",
	}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "sniffglue.conf"))
	}
	return paths
}

// Load reads the first config file found on the search path. A missing
// config file anywhere on the path is not an error: Load returns a zero
// Config, meaning "no sandboxing requested".
func Load() (Config, error) {
	for _, path := range searchPaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return LoadFile(path)
	}
	return Config{}, nil
}

// LoadFile reads and parses a specific config file path.
func LoadFile(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
