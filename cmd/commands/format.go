package commands

import (
	"github.com/spf13/cobra"

	"github.com/pluqqy/maskedit/internal/cli"
)

var (
	formatCaret  int
	formatOutput string
)

// NewFormatCommand creates the format command
func NewFormatCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format <mask> [value]",
		Short: "Render a value through a mask",
		Long: `Render a real value through a mask and print the display text.

Placeholders ('9') take the next digit of the value; unfilled placeholders
are shown as '_'. The first character that does not fit its slot blanks every
later placeholder.

Examples:
  # Show an empty date
  maskedit format 99/99/9999

  # Render a phone number
  maskedit format "(999) 999-9999" 5551234

  # Show where the caret would rest
  maskedit format 99/99/9999 123 --caret 5

  # Machine readable output
  maskedit format 99/99/9999 12345678 -o json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runFormat,
	}

	cmd.Flags().IntVar(&formatCaret, "caret", -1, "Caret offset to place and validate (shown under the text)")
	addOutputFlag(cmd, &formatOutput)

	return cmd
}

func runFormat(cmd *cobra.Command, args []string) error {
	m := args[0]
	value := ""
	if len(args) > 1 {
		value = args[1]
	}

	ctx := cli.NewCommandContext()
	format, err := ctx.OutputFormat(formatOutput)
	if err != nil {
		return err
	}

	if err := cli.ValidateMask(m); err != nil {
		return err
	}
	if err := cli.ValidateValue(m, value); err != nil {
		cli.PrintWarning("%v", err)
	}

	f := newField(m, value, formatCaret)

	if format != cli.FormatText {
		return cli.OutputResults(cmd.OutOrStdout(), format, reportOf(f))
	}

	writeDisplay(cmd.OutOrStdout(), f, formatCaret >= 0)
	return nil
}
