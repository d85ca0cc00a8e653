package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/yacobolo/jsxattr"
	"github.com/yacobolo/jsxattr/internal/logging"
)

const defaultConfigFile = ".jsxattr.yaml"

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigFile
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// CLI flags (highest precedence). Only flags set on the command line are
	// loaded; defaults are applied by buildRenderConfig.
	flags := cmd.Flags()
	provider := posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(flags, f)
	})
	if err := k.Load(provider, nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// Environment variables (JSXATTR_* prefix)
	if err := k.Load(env.Provider("JSXATTR_", ".", func(s string) string {
		// JSXATTR_RENDER_SOURCE -> render.source
		// JSXATTR_VERBOSE -> verbose
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "JSXATTR_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// defaultIncludes are the element document patterns rendered when none are configured.
var defaultIncludes = []string{"**/*.yaml", "**/*.yml", "**/*.json"}

// buildRenderConfig constructs the library's Config struct from koanf state.
func buildRenderConfig() jsxattr.Config {
	config := jsxattr.Config{
		SourceDir:        getStringWithFallback("source", "render.source", "web/fixtures"),
		OutputDir:        getStringWithFallback("output-dir", "render.output-dir", "build/html"),
		Extension:        getStringWithFallback("extension", "render.extension", "html"),
		RespectGitignore: getBoolWithFallback("respect-gitignore", "render.respect-gitignore", true),
		Verbose:          getBoolWithFallback("verbose", "verbose", false),
	}

	// Handle includes: check flag key first, then config key
	if includes := k.Strings("include"); len(includes) > 0 {
		config.Includes = includes
	} else if includes := k.Strings("render.include"); len(includes) > 0 {
		config.Includes = includes
	} else {
		config.Includes = append([]string(nil), defaultIncludes...)
	}

	return config
}

// logLevel resolves the console log level: --quiet silences everything,
// --verbose enables debug output, otherwise log-level from config applies.
func logLevel() string {
	if getBoolWithFallback("quiet", "quiet", false) {
		return logging.LevelNone
	}
	if getBoolWithFallback("verbose", "verbose", false) {
		return logging.LevelDebug
	}
	return getStringWithFallback("log-level", "log-level", logging.LevelNormal)
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}
