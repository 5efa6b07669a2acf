package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-generator/internal/config"
	"github.com/jonathan/resume-generator/internal/observability"
	"github.com/jonathan/resume-generator/internal/profile"
	"github.com/jonathan/resume-generator/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate [profile]",
	Short: "Validate a profile file",
	Long:  "Loads a profile (data.json by default) and checks it against the profile JSON Schema. Nothing is written.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runValidate,
}

var (
	validateSchemaFile string
	validateQuiet      bool
)

func init() {
	validateCmd.Flags().StringVarP(&validateSchemaFile, "schema", "s", "", "Validate a JSON profile against this schema file instead of the built-in one")
	validateCmd.Flags().BoolVarP(&validateQuiet, "quiet", "q", false, "Only report errors")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := config.DefaultInput
	if len(args) == 1 {
		path = args[0]
	}

	out := cmd.OutOrStdout()

	if validateSchemaFile != "" {
		if err := schemas.ValidateJSON(validateSchemaFile, path); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		if !validateQuiet {
			_, _ = fmt.Fprintf(out, "✓ %s is valid against %s\n", path, validateSchemaFile)
		}
		return nil
	}

	p, err := profile.Load(path)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	if !validateQuiet {
		_, _ = fmt.Fprintf(out, "✓ %s is a valid profile\n", path)
		observability.NewPrinter(out).PrintProfile(p)
	}
	return nil
}
