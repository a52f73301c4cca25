// Package paths resolves configuration and output directory locations.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// Directory names.
const (
	AppDirName           = "mathdoc"
	DefaultOutputDirName = "docs"
)

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "MATHDOC_CONFIG_DIR"
	EnvOutputDir = "MATHDOC_OUTPUT_DIR"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/mathdoc (fallback ~/.config/mathdoc)
// macOS:   ~/Library/Application Support/mathdoc
// Windows: %APPDATA%/mathdoc
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, AppDirName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", AppDirName), nil
	default:
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, AppDirName), nil
	}
}

// ResolveConfigDir returns the configuration directory following the precedence
// chain: flag > MATHDOC_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveOutputDir returns the directory documents and figures are written
// to, following the precedence chain:
// flag > configValue > MATHDOC_OUTPUT_DIR env > $(CWD)/docs.
func ResolveOutputDir(flag, configValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configValue != "" {
		return filepath.Abs(configValue)
	}
	if env := os.Getenv(EnvOutputDir); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultOutputDirName), nil
}

// DocumentPath returns the markdown file an exercise is rendered to.
func DocumentPath(outputDir, exercise string) string {
	return filepath.Join(outputDir, exercise+".md")
}
