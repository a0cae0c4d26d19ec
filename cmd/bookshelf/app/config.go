package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/bookshelf/pkg/constants"
	"github.com/agentstation/bookshelf/pkg/errors"
)

// EnvPrefix prefixes the environment variables read by the app,
// e.g. BOOKSHELF_FILE.
const EnvPrefix = "BOOKSHELF"

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// CatalogFile is the path of the catalog file.
	CatalogFile string

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (applied later by UpdateFromFlags)
// 2. Environment variables
// 3. .env files
// 4. Config file (configFile, or ~/.bookshelf.yaml and ./.bookshelf.yaml)
// 5. Defaults
func LoadConfig(configFile string) (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("file", constants.DefaultCatalogFile)
	v.SetDefault("log_format", "auto")
	v.SetDefault("log_output", "stderr")

	// Logging keeps the unprefixed names pkg/logging reads
	for key, env := range map[string]string{
		"log_level":  "LOG_LEVEL",
		"log_format": "LOG_FORMAT",
		"log_output": "LOG_OUTPUT",
	} {
		if err := v.BindEnv(key, env); err != nil {
			return nil, errors.NewConfigError("env", "failed to bind "+env, err)
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".bookshelf")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// An explicit --config must exist; the default locations are optional
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, errors.NewConfigError("config", "failed to read config file", err)
		}
	}

	return &Config{
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no_color") || os.Getenv("NO_COLOR") != "",
		Format:  v.GetString("format"),

		ConfigFile:  v.ConfigFileUsed(),
		CatalogFile: v.GetString("file"),

		LogLevel:  v.GetString("log_level"),
		LogFormat: v.GetString("log_format"),
		LogOutput: v.GetString("log_output"),
	}, nil
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags to ensure flag
// values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(flags FlagValues) {
	c.Verbose = c.Verbose || flags.Verbose
	c.Quiet = c.Quiet || flags.Quiet
	c.NoColor = c.NoColor || flags.NoColor
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.File != "" {
		c.CatalogFile = flags.File
	}

	switch {
	case flags.LogLevel != "":
		c.LogLevel = flags.LogLevel
	case flags.Verbose && flags.Quiet:
		c.LogLevel = "warn"
	case flags.Verbose:
		c.LogLevel = "debug"
	case flags.Quiet:
		c.LogLevel = "warn"
	}
}

// FlagValues are the global flag values read after parsing.
type FlagValues struct {
	File     string
	Format   string
	LogLevel string
	Verbose  bool
	Quiet    bool
	NoColor  bool
}

// loadEnvFiles loads environment variables from .env files.
// godotenv never overrides variables that are already set, so the
// process environment wins and .env wins over .env.local.
func loadEnvFiles() {
	for _, envFile := range []string{".env", ".env.local"} {
		_ = godotenv.Load(envFile)
	}
}
