package secrets

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Options selects and configures a Store backend.
type Options struct {
	Service  string // Service name partitioning the store
	Backend  string // auto, keyring, native or file
	Dir      string // Data directory for the file backend and warning marker
	Password string // File backend password; empty means machine-derived key
}

// warningShown checks if the file-store warning has already been shown.
// Uses a marker file in the data directory to avoid repeating on every command.
func warningShown(dir string) bool {
	_, err := os.Stat(warningMarkerPath(dir))
	return err == nil
}

func markWarningShown(dir string) {
	_ = os.MkdirAll(dir, 0700)
	_ = os.WriteFile(warningMarkerPath(dir), []byte("1"), 0600)
}

func warningMarkerPath(dir string) string {
	return filepath.Join(dir, ".file-store-warning-shown")
}

// quietMode returns true if the user has suppressed warnings via PURSE_QUIET.
func quietMode() bool {
	return os.Getenv("PURSE_QUIET") == "1" || os.Getenv("PURSE_QUIET") == "true"
}

// warnOutput receives file-store warnings
var warnOutput io.Writer = os.Stderr

// warnOnce prints a message unless a warning was already shown from this data directory,
// then marks it shown so later warnings in the same run stay quiet.
// Set PURSE_QUIET=1 to suppress entirely.
func warnOnce(dir, msg string) {
	if quietMode() || warningShown(dir) {
		return
	}
	fmt.Fprintln(warnOutput, msg)
	markWarningShown(dir)
}

// NewStore creates a Store for opts.Service using the requested backend.
// With BackendAuto it tries the OS keyring first and falls back to the
// encrypted file when the keyring is unavailable, or under WSL and headless Linux.
func NewStore(opts Options) (Store, error) {
	if opts.Service == "" {
		opts.Service = DefaultService
	}

	switch opts.Backend {
	case BackendKeyring:
		return NewKeyringStore(opts.Service, opts.Dir)
	case BackendNative:
		return NewNativeStore(opts.Service), nil
	case BackendFile:
		return newFallbackFileStore(opts)
	case BackendAuto, "":
		// handled below
	default:
		return nil, fmt.Errorf("unknown storage backend: %s (valid: %s)", opts.Backend, strings.Join(Backends, ", "))
	}

	// WSL and headless environments can't use keyring reliably
	if IsWSL() || IsHeadless() {
		warnOnce(opts.Dir, "Detected WSL/headless environment, using encrypted file storage")
		return newFallbackFileStore(opts)
	}

	store, err := NewKeyringStore(opts.Service, opts.Dir)
	if err != nil {
		warnOnce(opts.Dir, fmt.Sprintf("Keyring unavailable (%v), falling back to encrypted file", err))
		return newFallbackFileStore(opts)
	}

	return store, nil
}

func newFallbackFileStore(opts Options) (Store, error) {
	store, err := NewFileStore(opts.Dir, opts.Service, opts.Password)
	if err != nil {
		return nil, err
	}
	// Persist the marker so future commands stay quiet
	if !warningShown(opts.Dir) {
		markWarningShown(opts.Dir)
	}
	return store, nil
}

// IsWSL returns true if running under Windows Subsystem for Linux.
func IsWSL() bool {
	if runtime.GOOS != "linux" {
		return false
	}

	data, err := os.ReadFile("/proc/version")
	if err != nil {
		return false
	}

	version := strings.ToLower(string(data))
	return strings.Contains(version, "microsoft") || strings.Contains(version, "wsl")
}

// IsHeadless returns true if running in a headless environment (no display server).
// Only applicable on Linux; macOS and Windows are assumed to have GUI.
func IsHeadless() bool {
	if runtime.GOOS != "linux" {
		return false
	}

	return os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == ""
}
