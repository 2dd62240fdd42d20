package cli

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/ardnew/odatauri/pkg"
)

// baseConfig is the base name of the configuration files.
const baseConfig = "config"

// defaultDirMode is the permission mode for created directories.
var defaultDirMode os.FileMode = 0o700

// basePrefix returns the name of the directory holding this program's
// configuration and cache files.
//
// It is the base name of the executable without extension, except:
//   - "__debug_bin…" (output of the dlv debugger) becomes [pkg.Name]
//   - leading dots are removed
var basePrefix = sync.OnceValue(
	func() string {
		id := os.Args[0]
		if exe, err := os.Executable(); err == nil {
			id = exe
		}

		id = filepath.Base(id)
		id = strings.TrimSuffix(id, filepath.Ext(id))

		id = regexp.MustCompile(`^__debug_bin\d*$`).ReplaceAllString(id, pkg.Name)
		id = regexp.MustCompile(`^\.+`).ReplaceAllString(id, "")

		if id == "" {
			id = pkg.Name
		}

		return id
	},
)

// userDir joins basePrefix to the directory returned by user, falling back to
// fallback under the home directory, then to the working directory.
func userDir(user func() (string, error), fallback string) string {
	dir, err := user()
	if err != nil {
		if home, herr := os.UserHomeDir(); herr == nil {
			dir = filepath.Join(home, fallback)
		} else if dir, err = os.Getwd(); err != nil {
			dir = "."
		}
	}

	return filepath.Join(dir, basePrefix())
}

// configDir returns the configuration directory path.
var configDir = sync.OnceValue(
	func() string { return userDir(os.UserConfigDir, ".config") },
)

// cacheDir returns the directory used for history and profiles.
var cacheDir = sync.OnceValue(
	func() string { return userDir(os.UserCacheDir, ".cache") },
)

// configPath joins the configuration directory with the given elements.
func configPath(elem ...string) string {
	return filepath.Join(append([]string{configDir()}, elem...)...)
}

// mkdirAllRequired creates the configuration and cache directories.
func mkdirAllRequired() error {
	for _, dir := range []string{configDir(), cacheDir()} {
		if err := os.MkdirAll(dir, defaultDirMode); err != nil {
			return err
		}
	}

	return nil
}
