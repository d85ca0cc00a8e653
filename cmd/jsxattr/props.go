package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yacobolo/jsxattr"
	"gopkg.in/yaml.v3"
)

var propsCmd = &cobra.Command{
	Use:   "props [FILE]",
	Short: "Normalize a JSX property bag",
	Long: `Read a YAML/JSON property bag (from FILE or stdin), rename JSX aliases
(className → class, htmlFor → for) and print the result as YAML.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProps,
}

func init() {
	propsCmd.Flags().Bool("inline-style", false, "Serialize a style object property to its attribute string")
}

func runProps(cmd *cobra.Command, args []string) error {
	data, err := readInput(cmd, inputArg(args))
	if err != nil {
		return err
	}

	props := jsxattr.NewBag()
	if err := yaml.Unmarshal(data, props); err != nil {
		return fmt.Errorf("decode props: %w", err)
	}

	jsxattr.NormalizeIntrinsicElementProps(props)

	inline, _ := cmd.Flags().GetBool("inline-style")
	if style, ok := props.Get("style"); ok && inline {
		if bag, ok := style.(*jsxattr.StyleBag); ok {
			props.Set("style", jsxattr.StyleString(bag))
		}
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(props); err != nil {
		return fmt.Errorf("encode props: %w", err)
	}
	return enc.Close()
}
