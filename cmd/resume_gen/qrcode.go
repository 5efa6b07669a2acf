package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-generator/internal/config"
	"github.com/jonathan/resume-generator/internal/qrcode"
)

var qrcodeCmd = &cobra.Command{
	Use:   "qrcode <url>",
	Short: "Generate only the QR code image",
	Long:  "Encodes a URL as a QR code PNG using the same settings as a full run.",
	Args:  cobra.ExactArgs(1),
	RunE:  runQRCode,
}

var (
	qrcodeOutput  string
	qrcodeBoxSize int
	qrcodeBorder  int
	qrcodeLevel   string
)

func init() {
	qrcodeCmd.Flags().StringVarP(&qrcodeOutput, "out", "o", config.DefaultQRCode, "Path to output PNG file")
	qrcodeCmd.Flags().IntVar(&qrcodeBoxSize, "box-size", qrcode.DefaultBoxSize, "Pixels per module")
	qrcodeCmd.Flags().IntVar(&qrcodeBorder, "border", qrcode.DefaultBorder, "Quiet zone width in modules")
	qrcodeCmd.Flags().StringVar(&qrcodeLevel, "level", config.DefaultQRLevel, "Error correction level (L, M, Q, H)")

	rootCmd.AddCommand(qrcodeCmd)
}

func runQRCode(cmd *cobra.Command, args []string) error {
	url := args[0]
	if url == "" {
		return fmt.Errorf("url is empty")
	}

	level, err := qrcode.ParseLevel(qrcodeLevel)
	if err != nil {
		return fmt.Errorf("invalid --level: %w", err)
	}
	if qrcodeBoxSize <= 0 {
		return fmt.Errorf("--box-size must be positive (got %d)", qrcodeBoxSize)
	}
	if qrcodeBorder < 0 {
		return fmt.Errorf("--border must not be negative (got %d)", qrcodeBorder)
	}

	opts := qrcode.DefaultOptions()
	opts.Level = level
	opts.BoxSize = qrcodeBoxSize
	opts.Border = qrcodeBorder

	if err := qrcode.NewGenerator(opts).Generate(url, qrcodeOutput); err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Generated QR code: %s\n", qrcodeOutput)
	return nil
}
