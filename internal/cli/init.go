package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/mathdoc/pkg/types"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	OutputDir    string `yaml:"output_dir,omitempty"`
	FigureFormat string `yaml:"figure_format"`
	SampleSize   int    `yaml:"sample_size"`
	Seed         uint64 `yaml:"seed"`
	Catalog      bool   `yaml:"catalog"`
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the configuration and output directories",
		Long:  "Create the configuration directory with a default config.yaml and the output directory.",
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	configDir := state.configDir
	cfg := state.cfg

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return sysError(fmt.Errorf("create config directory: %w", err))
	}
	configPath := filepath.Join(configDir, configFileExt)
	written, err := writeConfigIfMissing(configPath, cfg)
	if err != nil {
		return sysError(fmt.Errorf("write config: %w", err))
	}
	if written {
		state.logger.Printf("wrote %s", configPath)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return sysError(fmt.Errorf("create output directory: %w", err))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "mathdoc initialized\nconfig: %s\noutput: %s\n", configPath, cfg.OutputDir)
	return nil
}

// writeConfigIfMissing creates config.yaml from cfg if the file does not
// exist. It reports whether a file was written.
func writeConfigIfMissing(path string, cfg types.Config) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}

	data, err := yaml.Marshal(&configFile{
		OutputDir:    cfg.OutputDir,
		FigureFormat: cfg.FigureFormat,
		SampleSize:   cfg.SampleSize,
		Seed:         cfg.Seed,
		Catalog:      cfg.Catalog,
	})
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	data = append([]byte("# mathdoc configuration\n"), data...)
	return true, os.WriteFile(path, data, 0o644)
}
