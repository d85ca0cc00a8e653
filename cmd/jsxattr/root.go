package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jsxattr",
	Short: "Normalize JSX element properties into HTML attributes",
	Long: `Translate JSX-style property bags (className, htmlFor, camelCase style
objects) into the attribute names and values HTML and SVG serialization expects.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().String("log-level", "normal", "Console log level: none|normal|debug")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", defaultConfigFile, "Config file path")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(styleCmd)
	rootCmd.AddCommand(propsCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
