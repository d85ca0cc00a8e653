package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yacobolo/jsxattr"
	"gopkg.in/yaml.v3"
)

var styleCmd = &cobra.Command{
	Use:   "style [FILE]",
	Short: "Serialize a camelCase style object as CSS declarations",
	Long: `Read a YAML/JSON style object (from FILE or stdin) and print the CSS
declarations it produces: kebab-case names, px suffixes on numeric values
of non-unitless properties. With --css, an inline declaration list is parsed
instead and printed back in the same form.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStyle,
}

func init() {
	f := styleCmd.Flags()
	f.String("css", "", "Parse this inline CSS declaration list instead of reading a style object")
	f.Bool("lines", false, "Print one name:value declaration per line")
}

func runStyle(cmd *cobra.Command, args []string) error {
	style, err := readStyle(cmd, args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	lines, _ := cmd.Flags().GetBool("lines")
	if lines {
		for name, value := range jsxattr.StyleEntries(style) {
			fmt.Fprintf(out, "%s: %s\n", name, value)
		}
		return nil
	}

	fmt.Fprintln(out, jsxattr.StyleString(style))
	return nil
}

func readStyle(cmd *cobra.Command, args []string) (*jsxattr.StyleBag, error) {
	if declarations, _ := cmd.Flags().GetString("css"); declarations != "" {
		return jsxattr.ParseInlineStyle(declarations)
	}

	data, err := readInput(cmd, inputArg(args))
	if err != nil {
		return nil, err
	}

	style := jsxattr.NewBag()
	if err := yaml.Unmarshal(data, style); err != nil {
		return nil, fmt.Errorf("decode style object: %w", err)
	}
	return style, nil
}
