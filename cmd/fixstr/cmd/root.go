package cmd

import (
	"fmt"

	"github.com/rawbytedev/fixedstr"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose bool
	width   int

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "fixstr",
	Short: "Inspect and encode fixed-width UTF-8 strings",
	Long: `fixstr builds fixed-width UTF-8 strings from its arguments and shows
how they slice: character boundaries, split points and wire frames.

With --width the text is NUL-padded to that many bytes.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogger,
	PersistentPostRun: syncLogger,
}

// Execute runs the root command. PersistentPostRun is skipped when a
// command fails, so the logger is flushed here as well.
func Execute() error {
	err := rootCmd.Execute()
	_ = logger.Sync()
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().IntVarP(&width, "width", "w", -1, "pad text to this many bytes (default: text length)")
}

func setupLogger(cmd *cobra.Command, args []string) error {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Encoding = "console"
	cfg.OutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true

	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	logger = l.Named(cmd.Name())
	return nil
}

func syncLogger(cmd *cobra.Command, args []string) {
	// stderr may not support fsync
	_ = logger.Sync()
}

// newStr builds the Str for text, honouring --width.
func newStr(text string) (*fixedstr.Str, error) {
	if width < 0 {
		return fixedstr.FromString(text)
	}
	return fixedstr.FromStringPadded(text, width)
}
