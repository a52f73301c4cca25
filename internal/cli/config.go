package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/mathdoc/internal/paths"
	"github.com/mesh-intelligence/mathdoc/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyOutputDir    = "output_dir"
	cfgKeyFigureFormat = "figure_format"
	cfgKeySampleSize   = "sample_size"
	cfgKeySeed         = "seed"
	cfgKeyCatalog      = "catalog"
)

// loadConfig reads config.yaml from configDir using Viper. A missing
// config.yaml is not an error; defaults apply.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyFigureFormat, types.DefaultFigureFormat)
	v.SetDefault(cfgKeySampleSize, types.DefaultSampleSize)
	v.SetDefault(cfgKeySeed, 0)
	v.SetDefault(cfgKeyCatalog, true)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// buildConfig resolves the output directory and returns a validated Config.
func buildConfig(v *viper.Viper, outputFlag string) (types.Config, error) {
	outputDir, err := paths.ResolveOutputDir(outputFlag, v.GetString(cfgKeyOutputDir))
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve output dir: %w", err)
	}
	cfg := types.Config{
		OutputDir:    outputDir,
		FigureFormat: v.GetString(cfgKeyFigureFormat),
		SampleSize:   v.GetInt(cfgKeySampleSize),
		Seed:         v.GetUint64(cfgKeySeed),
		Catalog:      v.GetBool(cfgKeyCatalog),
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
