package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-generator/internal/config"
	"github.com/jonathan/resume-generator/internal/observability"
	"github.com/jonathan/resume-generator/internal/pipeline"
	"github.com/jonathan/resume-generator/internal/qrcode"
)

var (
	generateInput      string
	generateOutput     string
	generateQRCode     string
	generateConfigFile string
	generateVerbose    bool
)

func init() {
	rootCmd.Flags().StringVarP(&generateInput, "input", "i", config.DefaultInput, "Path to profile file (.json, .yaml, .yml or .toml)")
	rootCmd.Flags().StringVarP(&generateOutput, "out", "o", config.DefaultOutput, "Path to output LaTeX file")
	rootCmd.Flags().StringVar(&generateQRCode, "qr", config.DefaultQRCode, "Path to QR code image (also the path embedded in the document)")
	rootCmd.Flags().StringVarP(&generateConfigFile, "config", "c", "", "Path to JSON config file (default: $"+config.EnvConfigPath+")")
	rootCmd.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "Print a profile summary and debug logs")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	level, err := qrcode.ParseLevel(cfg.QRLevel)
	if err != nil {
		return fmt.Errorf("invalid QR level: %w", err)
	}
	opts := qrcode.DefaultOptions()
	opts.Level = level
	opts.BoxSize = cfg.QRBoxSize
	opts.Border = cfg.Border()

	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	var logger *slog.Logger
	if cfg.Verbose {
		logger = slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	result, err := pipeline.Run(cmd.Context(), pipeline.RunOptions{
		InputPath:   cfg.Input,
		OutputPath:  cfg.Output,
		QRCodePath:  cfg.QRCode,
		QRGenerator: qrcode.NewGenerator(opts),
		Logger:      logger,
		OnProgress: func(event pipeline.ProgressEvent) {
			switch event.Category {
			case pipeline.CategoryInfo:
				_, _ = fmt.Fprintf(out, "✓ %s\n", event.Message)
			case pipeline.CategoryWarning:
				_, _ = fmt.Fprintf(errOut, "Warning: %s\n", event.Message)
			}
		},
	})
	if err != nil {
		return err
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(out)
		printer.PrintProfile(result.Profile)
		printer.PrintRunSummary(result.RunID.String(), stepStatuses(result.Steps))
		printer.PrintWarnings(result.Warnings)
	}

	return nil
}

func stepStatuses(outcomes []pipeline.StepOutcome) []observability.StepStatus {
	statuses := make([]observability.StepStatus, len(outcomes))
	for i, o := range outcomes {
		statuses[i] = observability.StepStatus{Step: o.Step, Status: o.Status}
	}
	return statuses
}

// resolveConfig layers defaults, the config file and explicitly set flags
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Defaults()

	path := generateConfigFile
	if path == "" {
		path = config.PathFromEnv()
	}
	if path != "" {
		fileCfg, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg.MergeWithDefaults(config.Defaults())
	}

	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Input = generateInput
	}
	if flags.Changed("out") {
		cfg.Output = generateOutput
	}
	if flags.Changed("qr") {
		cfg.QRCode = generateQRCode
	}
	if flags.Changed("verbose") {
		cfg.Verbose = generateVerbose
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
