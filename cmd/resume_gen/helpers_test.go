package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-generator/internal/config"
)

// getBinaryPath returns the path to the resume_gen binary for testing
func getBinaryPath(t *testing.T) string {
	binaryName := "resume_gen"
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", binaryName)
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'go build -o bin/ ./cmd/resume_gen'", binaryPath)
	}

	abs, err := filepath.Abs(binaryPath)
	require.NoError(t, err)
	return abs
}

// resetFlags restores every flag of cmd and its subcommands to its default
func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// executeCommand runs rootCmd in-process and returns what it printed
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv(config.EnvConfigPath, "")

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		resetFlags(rootCmd)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

// setupWorkDir copies the sample profile to data.json in a fresh directory and enters it
func setupWorkDir(t *testing.T) string {
	t.Helper()
	content, err := os.ReadFile(filepath.Join("testdata", "data.json"))
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultInput), content, 0644))
	chdirForTest(t, dir)
	return dir
}

// chdirForTest changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdirForTest(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
