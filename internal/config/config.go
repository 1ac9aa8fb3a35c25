package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"fpnpower/domain/electrode"
	"fpnpower/internal/errors"

	"gopkg.in/yaml.v3"
)

// Config represents the complete application configuration
type Config struct {
	Data     DataConfig
	Analysis AnalysisConfig
	Output   OutputConfig
	LogLevel string
}

// DataConfig locates the six band result files
type DataConfig struct {
	Dir       string
	BandFiles map[electrode.Band]string
}

// AnalysisConfig holds the aggregation constants
type AnalysisConfig struct {
	Alpha                float64
	DistinguishedNetwork string
	OtherNetworks        []string
	AverageBand          electrode.Band
}

// OutputConfig holds renderer settings
type OutputConfig struct {
	Dir     string
	Formats []string
}

// Supported report formats
const (
	FormatXLSX     = "xlsx"
	FormatHTML     = "html"
	FormatMarkdown = "md"
)

// DefaultBandFiles are the file names produced by the per-band electrode analysis
func DefaultBandFiles() map[electrode.Band]string {
	return map[electrode.Band]string{
		electrode.Delta:     "Band0-Delta Results - Band0-Delta Results.csv",
		electrode.Theta:     "Band1-Theta Results - Band1-Theta Results.csv",
		electrode.Alpha:     "Band2-Alpha Results - Band2-Alpha Results.csv",
		electrode.Beta:      "Band3-Beta Results - Band3-Beta Results.csv",
		electrode.LowGamma:  "Band4-Gamma Results - Band4-Gamma Results.csv",
		electrode.HighGamma: "Band5-HG Results - Band5-HG Results.csv",
	}
}

// Default returns the configuration used when nothing is overridden
func Default() *Config {
	return &Config{
		Data: DataConfig{
			Dir:       ".",
			BandFiles: DefaultBandFiles(),
		},
		Analysis: AnalysisConfig{
			Alpha:                0.05,
			DistinguishedNetwork: "FPN",
			OtherNetworks:        []string{"DMN", "CON", "motor"},
			AverageBand:          electrode.HighGamma,
		},
		Output: OutputConfig{
			Dir:     "./out",
			Formats: []string{FormatXLSX, FormatHTML},
		},
		LogLevel: "INFO",
	}
}

// Load builds the configuration from defaults, the optional CONFIG_FILE and
// environment variables, in increasing order of precedence, then validates it.
func Load() (*Config, error) {
	config := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := applyFile(config, path); err != nil {
			return nil, errors.Wrapf(err, "failed to load config file %s", path)
		}
	}

	if err := applyEnv(config); err != nil {
		return nil, errors.Wrap(err, "failed to load environment configuration")
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

// BandPath returns the full path of a band's results file
func (c *Config) BandPath(band electrode.Band) string {
	name := c.Data.BandFiles[band]
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.Data.Dir, name)
}

// WantsFormat reports whether a report format is enabled
func (c *Config) WantsFormat(format string) bool {
	for _, f := range c.Output.Formats {
		if f == format {
			return true
		}
	}
	return false
}

type fileConfig struct {
	Data struct {
		Dir       string            `yaml:"dir"`
		BandFiles map[string]string `yaml:"band_files"`
	} `yaml:"data"`
	Analysis struct {
		Alpha                *float64 `yaml:"alpha"`
		DistinguishedNetwork string   `yaml:"distinguished_network"`
		OtherNetworks        []string `yaml:"other_networks"`
		AverageBand          string   `yaml:"average_band"`
	} `yaml:"analysis"`
	Output struct {
		Dir     string   `yaml:"dir"`
		Formats []string `yaml:"formats"`
	} `yaml:"output"`
	LogLevel string `yaml:"log_level"`
}

func applyFile(config *Config, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(errors.ConfigInvalid("config file is not readable"), err.Error())
	}

	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return errors.Wrap(errors.ConfigInvalid("invalid YAML"), err.Error())
	}

	if fc.Data.Dir != "" {
		config.Data.Dir = fc.Data.Dir
	}
	for label, name := range fc.Data.BandFiles {
		band, err := electrode.ParseBand(label)
		if err != nil {
			return errors.ConfigInvalid(err.Error())
		}
		config.Data.BandFiles[band] = name
	}

	if fc.Analysis.Alpha != nil {
		config.Analysis.Alpha = *fc.Analysis.Alpha
	}
	if fc.Analysis.DistinguishedNetwork != "" {
		config.Analysis.DistinguishedNetwork = fc.Analysis.DistinguishedNetwork
	}
	if len(fc.Analysis.OtherNetworks) > 0 {
		config.Analysis.OtherNetworks = fc.Analysis.OtherNetworks
	}
	if fc.Analysis.AverageBand != "" {
		band, err := electrode.ParseBand(fc.Analysis.AverageBand)
		if err != nil {
			return errors.ConfigInvalid(err.Error())
		}
		config.Analysis.AverageBand = band
	}

	if fc.Output.Dir != "" {
		config.Output.Dir = fc.Output.Dir
	}
	if len(fc.Output.Formats) > 0 {
		config.Output.Formats = normalizeFormats(fc.Output.Formats)
	}
	if fc.LogLevel != "" {
		config.LogLevel = fc.LogLevel
	}
	return nil
}

func applyEnv(config *Config) error {
	config.Data.Dir = getEnvOrDefault("DATA_DIR", config.Data.Dir)
	config.Output.Dir = getEnvOrDefault("OUTPUT_DIR", config.Output.Dir)
	config.LogLevel = getEnvOrDefault("LOG_LEVEL", config.LogLevel)

	config.Analysis.Alpha = getEnvFloatOrDefault("SIGNIFICANCE_ALPHA", config.Analysis.Alpha)
	config.Analysis.DistinguishedNetwork = getEnvOrDefault("DISTINGUISHED_NETWORK", config.Analysis.DistinguishedNetwork)
	config.Analysis.OtherNetworks = getEnvListOrDefault("OTHER_NETWORKS", config.Analysis.OtherNetworks)

	if value := os.Getenv("AVERAGE_BAND"); value != "" {
		band, err := electrode.ParseBand(value)
		if err != nil {
			return errors.ConfigInvalid(err.Error())
		}
		config.Analysis.AverageBand = band
	}

	if formats := getEnvListOrDefault("REPORT_FORMATS", nil); formats != nil {
		config.Output.Formats = normalizeFormats(formats)
	}
	return nil
}

func validateConfig(config *Config) error {
	if config.Analysis.Alpha <= 0 || config.Analysis.Alpha >= 1 {
		return errors.ConfigInvalid("significance alpha must be in (0, 1)")
	}
	if strings.TrimSpace(config.Analysis.DistinguishedNetwork) == "" {
		return errors.ConfigInvalid("distinguished network name is required")
	}
	for _, other := range config.Analysis.OtherNetworks {
		if other == config.Analysis.DistinguishedNetwork {
			return errors.ConfigInvalid("distinguished network cannot also be listed as another network")
		}
	}
	for _, band := range electrode.AllBands {
		if config.Data.BandFiles[band] == "" {
			return errors.ConfigInvalid("no file configured for band " + band.String())
		}
	}
	for _, f := range config.Output.Formats {
		switch f {
		case FormatXLSX, FormatHTML, FormatMarkdown:
		default:
			return errors.ConfigInvalid("unsupported report format " + f)
		}
	}
	return nil
}

func normalizeFormats(formats []string) []string {
	out := make([]string, 0, len(formats))
	for _, f := range formats {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "markdown" {
			f = FormatMarkdown
		}
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
