// Package main provides the entry point for the resume_gen CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_gen",
	Short: "Generate a LaTeX resume and portfolio QR code from a profile",
	Long: "resume_gen reads a structured profile (data.json by default), writes a two-column LaTeX resume " +
		"(resume.tex) and, when the profile has a website URL, a QR code image (qr_code.png) the resume embeds.",
	Args:          cobra.NoArgs,
	RunE:          runGenerate,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
