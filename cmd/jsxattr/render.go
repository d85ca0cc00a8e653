package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yacobolo/jsxattr"
	"github.com/yacobolo/jsxattr/internal/logging"
	"github.com/yacobolo/jsxattr/internal/report"
)

var renderCmd = &cobra.Command{
	Use:   "render [FILE...]",
	Short: "Render element documents to HTML",
	Long: `Render YAML/JSON element documents to HTML with normalized attributes.
With file arguments (or "-" for stdin) the HTML is written to stdout;
without arguments every document under the configured source directory is
rendered into the output directory.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runRender,
}

func init() {
	f := renderCmd.Flags()
	f.String("source", "web/fixtures", "Directory containing element documents")
	f.String("output-dir", "build/html", "Output directory for rendered HTML")
	f.StringSlice("include", nil, "Glob patterns for documents to render")
	f.String("extension", "html", "Extension of rendered files")
	f.Bool("respect-gitignore", true, "Skip documents matched by .gitignore in the source directory")
}

func runRender(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return renderFiles(cmd, args)
	}

	config := buildRenderConfig()

	log, err := logging.New(logLevel())
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	result, err := jsxattr.Render(config, log)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	if !getBoolWithFallback("quiet", "quiet", false) {
		r := report.NewReporter(cmd.OutOrStdout(), getBoolWithFallback("color", "color", false))
		r.PrintResult(result, config.OutputDir)
	}

	return result.Err()
}

// renderFiles renders the given documents to stdout
func renderFiles(cmd *cobra.Command, paths []string) error {
	out := cmd.OutOrStdout()
	for _, path := range paths {
		data, err := readInput(cmd, path)
		if err != nil {
			return err
		}
		elements, err := jsxattr.DecodeElements(data)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		for _, el := range elements {
			if err := jsxattr.RenderElement(out, el); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			fmt.Fprintln(out)
		}
	}
	return nil
}
