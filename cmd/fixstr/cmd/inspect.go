package cmd

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect TEXT",
	Short: "Show length, boundaries and characters of TEXT",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	s, err := newStr(args[0])
	if err != nil {
		return err
	}
	logger.Debug("built string", zap.Int("len", s.Len()), zap.Int("width", width))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "len: %d empty: %v\n", s.Len(), s.IsEmpty())

	var marks strings.Builder
	for i := 0; i <= s.Len(); i++ {
		if s.IsCharBoundary(i) {
			marks.WriteByte('|')
		} else {
			marks.WriteByte('.')
		}
	}
	fmt.Fprintf(out, "boundaries: %s\n", marks.String())

	fmt.Fprintln(out, "offset  width  rune")
	for i, r := range s.CharIndices() {
		fmt.Fprintf(out, "%6d  %5d  %U %q\n", i, utf8.RuneLen(r), r, r)
	}
	return nil
}
