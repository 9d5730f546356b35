package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (

	// Name used for directory and file naming.
	toolName = "relpack"

	// Name of the per-repository configuration file.
	RepoConfigFile = toolName + ".yaml"

	// Default permission mode for directories.
	DefaultDirMode os.FileMode = 0755

	// Default permission mode for files.
	DefaultFileMode os.FileMode = 0644
)

// Path to the user-level configuration file.
//
//	Linux:   $XDG_CONFIG_HOME/relpack/config.yaml or ~/.config/relpack/config.yaml
//	macOS:   ~/Library/Application Support/relpack/config.yaml
func UserConfig() string {
	return filepath.Join(xdg.ConfigHome, toolName, "config.yaml")
}

// Path to the per-repository configuration file under root.
func RepoConfig(root string) string {
	return filepath.Join(root, RepoConfigFile)
}

// Resolves p against root unless it is already absolute.
func Resolve(root, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}

// Returns true if a regular file or directory exists at p.
func Exists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
