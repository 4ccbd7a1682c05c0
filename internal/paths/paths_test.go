package paths

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate clears every variable the resolution reads and moves into a fresh
// working directory, which it returns.
func isolate(t *testing.T) string {
	t.Helper()
	for _, k := range []string{EnvConfigDir, EnvDataDir, "XDG_CONFIG_HOME", "XDG_DATA_HOME"} {
		t.Setenv(k, "")
	}
	t.Chdir(t.TempDir())
	cwd, err := os.Getwd()
	require.NoError(t, err)
	return cwd
}

func TestConfigDir(t *testing.T) {
	tests := []struct {
		name  string
		where Where
		env   string
		xdg   string
		want  func(cwd string) string
		linux bool
	}{
		{
			name:  "flag beats the environment",
			where: Where{ConfigFlag: "/srv/flag", User: true},
			env:   "/srv/env",
			want:  func(string) string { return "/srv/flag" },
		},
		{
			name:  "environment beats the user directory",
			where: Where{User: true},
			env:   "/srv/env",
			xdg:   "/srv/xdg",
			want:  func(string) string { return "/srv/env" },
		},
		{
			name:  "user directory",
			where: Where{User: true},
			xdg:   "/srv/xdg",
			want:  func(string) string { return "/srv/xdg/inspector" },
			linux: true,
		},
		{
			name: "working directory by default",
			xdg:  "/srv/xdg",
			want: func(cwd string) string { return filepath.Join(cwd, DefaultConfigDirName) },
		},
		{
			name:  "relative flag made absolute",
			where: Where{ConfigFlag: "conf"},
			want:  func(cwd string) string { return filepath.Join(cwd, "conf") },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.linux && runtime.GOOS != "linux" {
				t.Skip("XDG layout is linux-only")
			}
			cwd := isolate(t)
			t.Setenv(EnvConfigDir, tt.env)
			t.Setenv("XDG_CONFIG_HOME", tt.xdg)

			got, err := tt.where.ConfigDir()
			require.NoError(t, err)
			assert.Equal(t, tt.want(cwd), got)
		})
	}
}

func TestDataDir(t *testing.T) {
	tests := []struct {
		name       string
		where      Where
		fromConfig string
		env        string
		xdg        string
		want       func(cwd string) string
		linux      bool
	}{
		{
			name:       "flag beats config.yaml",
			where:      Where{DataFlag: "/srv/flag"},
			fromConfig: "/srv/yaml",
			env:        "/srv/env",
			want:       func(string) string { return "/srv/flag" },
		},
		{
			name:       "config.yaml beats the environment",
			where:      Where{User: true},
			fromConfig: "/srv/yaml",
			env:        "/srv/env",
			want:       func(string) string { return "/srv/yaml" },
		},
		{
			name:  "environment beats the user directory",
			where: Where{User: true},
			env:   "/srv/env",
			xdg:   "/srv/xdg",
			want:  func(string) string { return "/srv/env" },
		},
		{
			name:  "user directory",
			where: Where{User: true},
			xdg:   "/srv/xdg",
			want:  func(string) string { return "/srv/xdg/inspector" },
			linux: true,
		},
		{
			name: "working directory by default",
			xdg:  "/srv/xdg",
			want: func(cwd string) string { return filepath.Join(cwd, DefaultDataDirName) },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.linux && runtime.GOOS != "linux" {
				t.Skip("XDG layout is linux-only")
			}
			cwd := isolate(t)
			t.Setenv(EnvDataDir, tt.env)
			t.Setenv("XDG_DATA_HOME", tt.xdg)

			got, err := tt.where.DataDir(tt.fromConfig)
			require.NoError(t, err)
			assert.Equal(t, tt.want(cwd), got)
		})
	}
}

func TestUserDataDirFallsBackToHome(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG layout is linux-only")
	}
	isolate(t)
	userHome = func() (string, error) { return "/home/ada", nil }
	t.Cleanup(func() { userHome = os.UserHomeDir })

	got, err := UserDataDir()
	require.NoError(t, err)
	assert.Equal(t, "/home/ada/.local/share/inspector", got)
}

func TestUserDirErrors(t *testing.T) {
	isolate(t)
	boom := errors.New("no home")
	userHome = func() (string, error) { return "", boom }
	userConfig = func() (string, error) { return "", boom }
	t.Cleanup(func() {
		userHome = os.UserHomeDir
		userConfig = os.UserConfigDir
	})

	_, err := Where{User: true}.ConfigDir()
	assert.ErrorIs(t, err, boom)
	_, err = Where{User: true}.DataDir("")
	assert.ErrorIs(t, err, boom)

	// Without User the per-user lookup is never made.
	_, err = Where{}.ConfigDir()
	assert.NoError(t, err)
}
