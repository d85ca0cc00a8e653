package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .jsxattr.yaml config file",
	Long:  `Create a .jsxattr.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigFile); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigFile)
		}

		if err := os.WriteFile(defaultConfigFile, []byte(defaultConfig), 0o644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", defaultConfigFile)
		return nil
	},
}

const defaultConfig = `# jsxattr configuration
# Docs: https://github.com/yacobolo/jsxattr

# Shared settings
verbose: false
log-level: normal   # none | normal | debug

# Batch rendering of element documents
render:
  source: web/fixtures
  output-dir: build/html
  include:
    - "**/*.yaml"
    - "**/*.yml"
    - "**/*.json"
  extension: html
  respect-gitignore: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
