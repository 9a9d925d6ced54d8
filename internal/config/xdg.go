package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// ConfigDir returns the XDG-compliant config directory for purse
// Typically ~/.config/purse/ on Linux
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, "purse")
}

// ConfigPath returns the full path to the config file
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.json5")
}

// DataDir returns the XDG-compliant data directory for purse
// Typically ~/.local/share/purse/ on Linux; holds the encrypted file store
func DataDir() string {
	return filepath.Join(xdg.DataHome, "purse")
}
