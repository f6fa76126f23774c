package cmd

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/rawbytedev/fixedstr"
	"github.com/rawbytedev/fixedstr/pkg/compactwire"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var compress bool

var packCmd = &cobra.Command{
	Use:   "pack TEXT...",
	Short: "Encode TEXT arguments into a hex wire frame",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPack,
}

var unpackCmd = &cobra.Command{
	Use:   "unpack HEX",
	Short: "Decode a hex wire frame and print its entries",
	Args:  cobra.ExactArgs(1),
	RunE:  runUnpack,
}

func init() {
	packCmd.Flags().BoolVar(&compress, "zstd", false, "zstd-compress the frame body")
	rootCmd.AddCommand(packCmd)
	rootCmd.AddCommand(unpackCmd)
}

func runPack(cmd *cobra.Command, args []string) error {
	strs := make([]*fixedstr.Str, 0, len(args))
	for i, a := range args {
		s, err := newStr(a)
		if err != nil {
			return fmt.Errorf("argument %d: %w", i, err)
		}
		strs = append(strs, s)
	}
	data, err := compactwire.NewEncoder(compactwire.Options{Compress: compress}).EncodeFrame(strs)
	if err != nil {
		return err
	}
	logger.Debug("encoded frame", zap.Int("entries", len(strs)), zap.Int("bytes", len(data)), zap.Bool("zstd", compress))
	fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(data))
	return nil
}

func runUnpack(cmd *cobra.Command, args []string) error {
	data, err := hex.DecodeString(strings.TrimSpace(args[0]))
	if err != nil {
		return fmt.Errorf("invalid hex: %w", err)
	}
	var dec compactwire.Decoder
	strs, err := dec.DecodeFrame(data)
	if err != nil {
		logger.Warn("frame rejected", zap.Int("bytes", len(data)), zap.Error(err))
		return err
	}
	for i, s := range strs {
		fmt.Fprintf(cmd.OutOrStdout(), "%d\t%d\t%q\n", i, s.Len(), s.AsString())
	}
	return nil
}
