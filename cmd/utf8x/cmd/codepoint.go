package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"
)

func (a *app) ordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ord [text...]",
		Short: "Print the codepoint of every character",
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			if text == "" {
				_, err := a.util.CodepointOf(text)
				return err
			}

			for off := 0; off < len(text); {
				_, size := utf8.DecodeRuneInString(text[off:])
				char := text[off : off+size]
				off += size

				cp, err := a.util.CodepointOf(char)
				if err != nil {
					return err
				}
				printLine(cmd, fmt.Sprintf("%s\t%d\tU+%04X", char, cp, cp))
			}
			return nil
		}),
	}
}

func (a *app) chrCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chr <codepoint>...",
		Short: "Print the characters of decimal, 0x or U+ codepoints",
		Example: `  utf8x chr 8359
  utf8x chr U+1F618 0x20AC`,
		Args: cobra.MinimumNArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			var b strings.Builder
			for _, arg := range args {
				cp, err := parseCodepoint(arg)
				if err != nil {
					return err
				}
				char, err := a.util.CharOf(cp)
				if err != nil {
					return err
				}
				b.WriteString(char)
			}
			printLine(cmd, b.String())
			return nil
		}),
	}
}

// parseCodepoint accepts 8359, 0x20A7 and U+20A7
func parseCodepoint(s string) (int64, error) {
	digits := strings.TrimSpace(s)
	base := 10
	switch upper := strings.ToUpper(digits); {
	case strings.HasPrefix(upper, "U+"), strings.HasPrefix(upper, "0X"):
		digits = digits[2:]
		base = 16
	}

	cp, err := strconv.ParseInt(digits, base, 64)
	if err != nil {
		return 0, usageError("chr", s, "decimal, 0x or U+ codepoint")
	}
	return cp, nil
}
