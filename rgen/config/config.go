package config

import (
	"fmt"
	"strings"

	internal "github.com/enosistudio/rgen/rgen"

	"github.com/spf13/viper"
)

// Config stores all configuration of the generator.
// The values are read by viper from a config file or environment variables.
type Config struct {
	Generator GeneratorConfig `mapstructure:"generator"`
}

// GeneratorConfig stores the settings of one generation run.
type GeneratorConfig struct {
	// ResourcesDir is the directory scanned for resource files. A missing
	// or non-directory path yields an empty accessor tree, not an error.
	ResourcesDir string `mapstructure:"resourcesDir"`

	// PackageName is copied verbatim into the package clause of the
	// generated source.
	PackageName string `mapstructure:"packageName"`

	// OutputFile is the path the generated source is written to.
	OutputFile string `mapstructure:"outputFile"`

	// IgnorePatterns are gitignore-style patterns; matching entries are
	// skipped during the scan.
	IgnorePatterns []string `mapstructure:"ignorePatterns"`

	// Verbose enables debug logging.
	Verbose bool `mapstructure:"verbose"`
}

var AppConfig Config

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(configPath string) (*Config, error) {
	if configPath != "" {
		viper.SetConfigFile(configPath)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(internal.DefaultAppName)
		viper.SetConfigType("yaml")
	}

	// Set default values
	viper.SetDefault("generator.resourcesDir", internal.DefaultResourcesDir)
	viper.SetDefault("generator.packageName", internal.DefaultPackageName)
	viper.SetDefault("generator.outputFile", internal.DefaultOutputFile)
	viper.SetDefault("generator.ignorePatterns", []string{})
	viper.SetDefault("generator.verbose", false)

	viper.AutomaticEnv()                                   // Read in environment variables that match
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // e.g. generator.resourcesDir becomes GENERATOR_RESOURCESDIR

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; defaults will be used. This is not an
			// error for the generator to halt on.
		} else {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	err := viper.Unmarshal(&AppConfig)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	return &AppConfig, nil
}
