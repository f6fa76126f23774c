package cmd

import (
	"fmt"
	"strconv"

	"github.com/rawbytedev/fixedstr"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var splitCmd = &cobra.Command{
	Use:   "split TEXT MID",
	Short: "Split TEXT at byte offset MID",
	Args:  cobra.ExactArgs(2),
	RunE:  runSplit,
}

func init() {
	rootCmd.AddCommand(splitCmd)
}

func runSplit(cmd *cobra.Command, args []string) error {
	s, err := newStr(args[0])
	if err != nil {
		return err
	}
	mid, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid MID %q: %w", args[1], err)
	}

	left, right, err := splitAt(s, mid)
	if err != nil {
		logger.Warn("split rejected", zap.Int("mid", mid), zap.Error(err))
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%q\n%q\n", left, right)
	return nil
}

// splitAt reports a boundary violation from SplitAt as an error.
func splitAt(s *fixedstr.Str, mid int) (left, right string, err error) {
	defer func() {
		if r := recover(); r != nil {
			be, ok := r.(*fixedstr.BoundaryError)
			if !ok {
				panic(r)
			}
			err = be
		}
	}()
	left, right = s.SplitAt(mid)
	return left, right, nil
}
