package secrets

import (
	"bytes"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStoreBackendSelection(t *testing.T) {
	t.Setenv("PURSE_QUIET", "1")
	dir := t.TempDir()

	tests := []struct {
		name    string
		backend string
		want    string
	}{
		{name: "file", backend: BackendFile, want: BackendFile},
		{name: "native", backend: BackendNative, want: BackendNative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := NewStore(Options{Service: "svc", Backend: tt.backend, Dir: dir, Password: "pw"})
			require.NoError(t, err)
			assert.Equal(t, tt.want, store.Backend())
		})
	}
}

func TestNewStoreUnknownBackend(t *testing.T) {
	_, err := NewStore(Options{Backend: "floppy", Dir: t.TempDir()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown storage backend")
}

func TestNewStoreFileBackendMarksWarning(t *testing.T) {
	t.Setenv("PURSE_QUIET", "1")
	dir := t.TempDir()

	_, err := NewStore(Options{Backend: BackendFile, Dir: dir})
	require.NoError(t, err)
	assert.True(t, warningShown(dir))
}

func TestNewStoreHeadlessFallsBackToFile(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("headless detection only applies on linux")
	}
	t.Setenv("DISPLAY", "")
	t.Setenv("WAYLAND_DISPLAY", "")
	t.Setenv("PURSE_QUIET", "1")

	store, err := NewStore(Options{Backend: BackendAuto, Dir: t.TempDir(), Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, BackendFile, store.Backend())
}

func TestQuietMode(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{value: "1", want: true},
		{value: "true", want: true},
		{value: "0", want: false},
		{value: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("PURSE_QUIET", tt.value)
			assert.Equal(t, tt.want, quietMode())
		})
	}
}

func TestNewStoreFallbackWarnsOnce(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("headless detection only applies on linux")
	}
	t.Setenv("DISPLAY", "")
	t.Setenv("WAYLAND_DISPLAY", "")
	t.Setenv("PURSE_QUIET", "")

	var buf bytes.Buffer
	prev := warnOutput
	warnOutput = &buf
	t.Cleanup(func() { warnOutput = prev })

	dir := t.TempDir()
	_, err := NewStore(Options{Backend: BackendAuto, Dir: dir})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 1, "got warnings: %q", buf.String())
	assert.True(t, warningShown(dir))

	buf.Reset()
	_, err = NewStore(Options{Backend: BackendAuto, Dir: dir})
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}
