package types

import "errors"

// Config holds the settings a documentation run reads from config.yaml.
type Config struct {
	// OutputDir receives rendered markdown and figure files.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// FigureFormat is the image extension used for saved figures.
	FigureFormat string `json:"figure_format" yaml:"figure_format"`

	// SampleSize is the length of the random arrays numeric exercises draw.
	SampleSize int `json:"sample_size" yaml:"sample_size"`

	// Seed seeds the random source. Zero means a time-based seed.
	Seed uint64 `json:"seed" yaml:"seed"`

	// Catalog enables recording saved figures in the figure catalog.
	Catalog bool `json:"catalog" yaml:"catalog"`
}

// Defaults.
const (
	DefaultFigureFormat = "svg"
	DefaultSampleSize   = 100
)

// Config validation errors.
var (
	ErrOutputDirEmpty      = errors.New("output directory must not be empty")
	ErrFigureFormatUnknown = errors.New("unknown figure format")
	ErrSampleSizeInvalid   = errors.New("sample size must be positive")
)

// knownFormats lists the figure formats the plot adapter can write.
var knownFormats = map[string]bool{
	"svg":  true,
	"png":  true,
	"pdf":  true,
	"eps":  true,
	"jpg":  true,
	"jpeg": true,
	"tif":  true,
	"tiff": true,
}

// KnownFigureFormat reports whether format is a supported image extension.
func KnownFigureFormat(format string) bool {
	return knownFormats[format]
}

// DefaultConfig returns a Config with default values for outputDir.
func DefaultConfig(outputDir string) Config {
	return Config{
		OutputDir:    outputDir,
		FigureFormat: DefaultFigureFormat,
		SampleSize:   DefaultSampleSize,
		Catalog:      true,
	}
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return ErrOutputDirEmpty
	}
	if !knownFormats[c.FigureFormat] {
		return ErrFigureFormatUnknown
	}
	if c.SampleSize <= 0 {
		return ErrSampleSizeInvalid
	}
	return nil
}
